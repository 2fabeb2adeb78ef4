package processor

import (
	"fmt"
	"html"
	"strings"

	"stock-digest/internal/digest/model"
)

// RenderDocument 把分类块渲染成展示层直接消费的 HTML 片段。
// 「每个分类一个容器、每只股票一个列表项」的嵌套结构是约定的一部分，
// 市值过滤就是按这个粒度裁剪的，不能改。
func RenderDocument(blocks []model.CategoryBlock) string {
	var b strings.Builder
	b.WriteString(`<h2 class="report-title">상승률 TOP 30 정리</h2>`)

	for _, blk := range blocks {
		if len(blk.Stocks) == 0 {
			// 개별주/기타：只有标题，没有计数徽章和列表
			fmt.Fprintf(&b, `<div class="category plain"><h3>%s</h3></div>`,
				html.EscapeString(blk.Label))
			continue
		}

		fmt.Fprintf(&b,
			`<div class="category"><h3><span class="emoji">%s</span> %s <span class="badge">%d개</span></h3><ul>`,
			blk.Emoji, html.EscapeString(blk.Label), len(blk.Stocks))
		for _, s := range blk.Stocks {
			fmt.Fprintf(&b,
				`<li><strong>%s</strong> <span class="meta">(상승률 %s, 시총 %s)</span></li>`,
				html.EscapeString(s.Name), html.EscapeString(s.Rate), html.EscapeString(s.MarketCapText))
		}
		b.WriteString(`</ul></div>`)
	}
	return b.String()
}
