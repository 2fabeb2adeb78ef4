package processor

import (
	"sort"
	"strings"
	"time"

	"stock-digest/internal/digest/model"
)

// MergedDay 同一自然日内全部消息分片合并后的文本
type MergedDay struct {
	ID   int64     // 代表 id：组内最早一条（第 1 部分）
	Date time.Time // 展示时间：组内最晚一条的时间戳
	Text string
}

// GroupByDay 把消息按 loc 时区的自然日分组，组内按 id 升序合并，
// 返回按日期倒序（最新在前）的合并结果。
// 多部分连发可能共享同一时间戳，所以组内排序只看 id 不看时间。
// 只有一条消息的组就是平凡合并。
func GroupByDay(msgs []model.RawMessage, loc *time.Location) []MergedDay {
	groups := make(map[string][]model.RawMessage)
	keys := make([]string, 0)
	for _, m := range msgs {
		key := m.Timestamp.In(loc).Format("2006-01-02")
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]MergedDay, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		sort.Slice(g, func(i, j int) bool { return g[i].ID < g[j].ID })

		parts := make([]string, 0, len(g))
		for _, m := range g {
			parts = append(parts, m.Text)
		}
		out = append(out, MergedDay{
			ID:   g[0].ID,
			Date: g[len(g)-1].Timestamp,
			Text: strings.Join(parts, "\n\n"),
		})
	}
	return out
}

// TrimBoundaries 去掉标题短语之前（含标题本身）的头部和免责声明之后的尾部。
// 标题短语按最后一次出现截断，正文引用里再出现一次也不会留下残余。
// 找不到标题时原样放行：相关性在更早的阶段已经用更宽的关键词集确认过，
// 这里缺个精确标题不能把整条消息丢掉。
func TrimBoundaries(text string) string {
	if idx := strings.LastIndex(text, TitlePhrase); idx >= 0 {
		text = strings.TrimSpace(text[idx+len(TitlePhrase):])
	}
	if idx := strings.Index(text, DisclaimerMarker); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}
	return text
}
