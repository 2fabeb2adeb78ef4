package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stock-digest/internal/digest/model"
)

func TestRenderDocument_StructuralGrammar(t *testing.T) {
	blocks := []model.CategoryBlock{
		{
			Label: "로봇",
			Emoji: "🤖",
			Stocks: []model.StockEntry{
				{Name: "ABC", Rate: "12.3%", MarketCapText: "1500억"},
			},
		},
	}

	html := RenderDocument(blocks)

	// 每个分类一个容器、每只股票一个列表项
	assert.Equal(t, 1, strings.Count(html, `<div class="category">`))
	assert.Equal(t, 1, strings.Count(html, "<li>"))
	assert.Contains(t, html, "🤖")
	assert.Contains(t, html, "로봇")
	assert.Contains(t, html, "1개")
	assert.Contains(t, html, "(상승률 12.3%, 시총 1500억)")
}

func TestRenderDocument_StandaloneBlock(t *testing.T) {
	blocks := []model.CategoryBlock{{Label: "개별주 이슈", Emoji: "✨"}}
	html := RenderDocument(blocks)

	assert.Contains(t, html, `<div class="category plain">`)
	assert.NotContains(t, html, "<ul>")
	assert.NotContains(t, html, `class="badge"`) // 没有计数徽章
}

func TestRenderDocument_EscapesNames(t *testing.T) {
	blocks := []model.CategoryBlock{
		{
			Label: "게임 <스페셜>",
			Emoji: "🎮",
			Stocks: []model.StockEntry{
				{Name: "A&B", Rate: "1.0%", MarketCapText: "100억"},
			},
		},
	}
	html := RenderDocument(blocks)
	assert.Contains(t, html, "게임 &lt;스페셜&gt;")
	assert.Contains(t, html, "A&amp;B")
}

func TestRenderDocument_EmptyBlocks(t *testing.T) {
	html := RenderDocument(nil)
	assert.Contains(t, html, "상승률 TOP 30 정리")
	assert.NotContains(t, html, "<div")
}
