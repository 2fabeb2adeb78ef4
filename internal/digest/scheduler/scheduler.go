package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stock-digest/internal/digest/helper"
	"stock-digest/internal/digest/model"
	"stock-digest/internal/digest/processor"
	"stock-digest/internal/digest/source"
	"stock-digest/pkg/config"
)

type Worker struct {
	Log    *zap.Logger
	Stores *helper.Stores
	Source source.Source
	Cfg    *config.Config
}

// nextRun 收盘时报在下午到晚间分批发出，按首尔时间在这几个整点各跑一轮。
// 定时重跑本身就是重试机制，单轮内部不做重试。
func nextRun(now time.Time, loc *time.Location) time.Time {
	anchors := []int{16, 18, 20, 22}
	local := now.In(loc)
	for _, h := range anchors {
		t := time.Date(local.Year(), local.Month(), local.Day(), h, 0, 0, 0, loc)
		if !t.Before(local) {
			return t.UTC()
		}
	}
	// 都过了 -> 明天第一个点位
	next := time.Date(local.Year(), local.Month(), local.Day()+1, anchors[0], 0, 0, 0, loc)
	return next.UTC()
}

func (w *Worker) Run(ctx context.Context) {
	// 启动先跑一次
	w.RunOnce(ctx)

	loc := helper.Location()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			next := nextRun(time.Now(), loc)
			sleep := time.Until(next)
			if sleep < 0 {
				sleep = 0
			}
			timer := time.NewTimer(sleep)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				w.RunOnce(ctx)
			}
		}
	}
}

// RunOnce 一轮完整的管道：拉取 → 相关性/窗口过滤 → 按日合并 → 逐日构建并入库。
// 每轮的明细表和分类块都是本轮局部状态，轮与轮之间不共享。
func (w *Worker) RunOnce(ctx context.Context) {
	msgs, err := w.Source.FetchMessages(ctx, w.Cfg.Source.Limit)
	if err != nil {
		w.Log.Error("Failed to fetch messages", zap.Error(err))
		return
	}

	keywords := w.Cfg.Pipeline.Keywords
	if len(keywords) == 0 {
		keywords = processor.DefaultKeywords()
	}
	cutoff := time.Now().AddDate(0, 0, -w.Cfg.Pipeline.WindowDays)

	relevant := selectRelevant(msgs, keywords, cutoff)
	days := processor.GroupByDay(relevant, helper.Location())

	saved := 0
	for _, day := range days {
		report := buildReport(day)
		if err := w.Stores.UpsertReport(ctx, report); err != nil {
			// 单日入库失败记日志就继续，不拖垮整批
			w.Log.Error("Failed to upsert report",
				zap.Int64("id", report.ID),
				zap.Time("date", report.Date),
				zap.Error(err),
			)
			continue
		}
		saved++
	}

	w.Log.Info("Digest run completed",
		zap.Int("messages", len(msgs)),
		zap.Int("relevant", len(relevant)),
		zap.Int("days", len(days)),
		zap.Int("saved", saved),
	)
}

// selectRelevant 丢掉窗口外和不相关的消息
func selectRelevant(msgs []model.RawMessage, keywords []string, cutoff time.Time) []model.RawMessage {
	var out []model.RawMessage
	for _, m := range msgs {
		if !m.Timestamp.After(cutoff) {
			continue
		}
		if !processor.IsRelevant(m.Text, keywords) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// buildReport 单日流水线：裁剪 → 明细提取 → 摘要解析 → 渲染。
// 解析不出摘要区就退回清洗后的原文，照常入库。
func buildReport(day processor.MergedDay) *model.Report {
	body := processor.TrimBoundaries(day.Text)
	details := processor.ExtractStockDetails(body)
	blocks := processor.ParseSummary(body, details)

	content := body
	if blocks != nil {
		content = processor.RenderDocument(blocks)
	}

	return &model.Report{
		ID:         day.ID,
		Date:       day.Date,
		Categories: blocks,
		Content:    content,
		Source:     model.SourcePrimary,
		CreatedAt:  time.Now().UTC(),
	}
}
