package scheduler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-digest/internal/digest/model"
	"stock-digest/internal/digest/processor"
)

var kst = time.FixedZone("KST", 9*3600)

const fixtureReport = `장 시작 전 인사말입니다.
몽당연필의 장마감 시황

오늘의 특징주

1. ABC (12.3%) : 로봇, 시총 1500억
2. XYZ반도체 (8.1%) : 반도체, 시총 1조 2000억
3. 바이오팜 (5.5%) : 바이오, 시총 900억

상승률TOP30 정리

로봇
ABC, DEF (2)

반도체
XYZ반도체 (1)

개별주 이슈

[주의사항]
투자 판단은 본인 책임입니다.`

func TestBuildReport_FullPipeline(t *testing.T) {
	day := processor.MergedDay{
		ID:   101,
		Date: time.Date(2025, 8, 25, 16, 30, 0, 0, kst),
		Text: fixtureReport,
	}

	report := buildReport(day)

	assert.Equal(t, int64(101), report.ID)
	assert.Equal(t, day.Date, report.Date)
	assert.Equal(t, model.SourcePrimary, report.Source)

	// 로봇(ABC만, DEF는 명세 없음) + 반도체 + 개별주
	require.Len(t, report.Categories, 3)
	assert.Equal(t, "로봇", report.Categories[0].Label)
	require.Len(t, report.Categories[0].Stocks, 1)
	assert.Equal(t, "ABC", report.Categories[0].Stocks[0].Name)
	assert.Equal(t, "반도체", report.Categories[1].Label)
	assert.Equal(t, "개별주 이슈", report.Categories[2].Label)

	// 渲染后的内容不含头尾残余
	assert.False(t, strings.Contains(report.Content, processor.TitlePhrase))
	assert.False(t, strings.Contains(report.Content, processor.DisclaimerMarker))
	assert.Contains(t, report.Content, "🤖")
}

func TestBuildReport_FallbackWithoutSummary(t *testing.T) {
	day := processor.MergedDay{
		ID:   202,
		Date: time.Date(2025, 8, 25, 16, 30, 0, 0, kst),
		Text: "몽당연필의 장마감 시황\n오늘은 요약 없이 코멘트만 남깁니다.",
	}

	report := buildReport(day)

	// 解析不出摘要就保存清洗后的原文，照常入库
	assert.Nil(t, report.Categories)
	assert.Equal(t, "오늘은 요약 없이 코멘트만 남깁니다.", report.Content)
}

func TestSelectRelevant(t *testing.T) {
	cutoff := time.Date(2025, 8, 1, 0, 0, 0, 0, kst)
	msgs := []model.RawMessage{
		{ID: 1, Timestamp: time.Date(2025, 7, 20, 16, 0, 0, 0, kst), Text: "상승률TOP30 옛날 것"},
		{ID: 2, Timestamp: time.Date(2025, 8, 25, 16, 0, 0, 0, kst), Text: "상승률TOP30 최신"},
		{ID: 3, Timestamp: time.Date(2025, 8, 25, 17, 0, 0, 0, kst), Text: "잡담입니다"},
	}

	got := selectRelevant(msgs, processor.DefaultKeywords(), cutoff)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestNextRun(t *testing.T) {
	// 15:00 -> 당일 16:00
	now := time.Date(2025, 8, 25, 15, 0, 0, 0, kst)
	assert.Equal(t, time.Date(2025, 8, 25, 16, 0, 0, 0, kst).UTC(), nextRun(now, kst))

	// 23:00 -> 다음날 16:00
	now = time.Date(2025, 8, 25, 23, 0, 0, 0, kst)
	assert.Equal(t, time.Date(2025, 8, 26, 16, 0, 0, 0, kst).UTC(), nextRun(now, kst))
}
