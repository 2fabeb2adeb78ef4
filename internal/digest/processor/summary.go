package processor

import (
	"strings"

	"stock-digest/internal/digest/model"
)

// 摘要区头部的三种写法，按优先级匹配，命中第一个就开始解析
var summaryHeaders = []string{"상승률TOP30 정리", "상승률 TOP30 정리", "상승률TOP30정리"}

// 独立段落标记：个股（개별주）、其他（기타），只有标题没有股票列表
var standaloneMarkers = []string{"개별주", "기타"}

// ParseSummary 定位 TOP30 摘要区并解析成分类块序列。
// 找不到摘要头时返回 nil，调用方回退为保存裁剪后的原文，
// 格式化失败只是降级展示，不阻塞持久化。
func ParseSummary(text string, details *DetailMap) []model.CategoryBlock {
	body, ok := locateSummary(text)
	if !ok {
		return nil
	}
	lines := splitLines(body)

	var blocks []model.CategoryBlock
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// 向前看一行：下一行带逗号或 (N) 计数后缀的，
		// 当前行就是分类标题，下一行就是股票列表。
		// 这个格式没有显式分隔符，lookahead 是唯一靠得住的信号。
		if i+1 < len(lines) && isStockListLine(lines[i+1]) {
			if blk, ok := buildCategoryBlock(line, lines[i+1], details); ok {
				blocks = append(blocks, blk)
			}
			i++ // 股票列表行已消费
			continue
		}

		if isStandaloneLine(line) {
			blocks = append(blocks, model.CategoryBlock{
				Label: line,
				Emoji: ClassifyCategory(line),
			})
			continue
		}

		// 两边都不像的行静默跳过，这是设计好的 no-op 不是错误
	}
	return blocks
}

// buildCategoryBlock 处理一对（分类标题行, 股票列表行）。
// 先去重再对照明细表过滤，明细里查不到的名字直接丢弃；
// 全部落空的分类整体省略，不输出空块。
func buildCategoryBlock(label, stockLine string, details *DetailMap) (model.CategoryBlock, bool) {
	names := splitStockList(stockLine)

	seen := make(map[string]bool, len(names))
	var entries []model.StockEntry
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		det, ok := details.Get(name)
		if !ok {
			continue
		}
		entries = append(entries, model.StockEntry{
			Name:          name,
			Rate:          det.Rate,
			MarketCapText: det.MarketCapText,
		})
	}
	if len(entries) == 0 {
		return model.CategoryBlock{}, false
	}
	return model.CategoryBlock{
		Label:  label,
		Emoji:  ClassifyCategory(label),
		Stocks: entries,
	}, true
}

// locateSummary 从第一个命中的摘要头之后开始取正文
func locateSummary(text string) (string, bool) {
	for _, h := range summaryHeaders {
		if idx := strings.Index(text, h); idx >= 0 {
			return text[idx+len(h):], true
		}
	}
	return "", false
}

// splitLines 切行、去空白、丢空行
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// isStockListLine 带逗号或以 (N) 计数后缀结尾的行当作股票列表
func isStockListLine(line string) bool {
	return strings.Contains(line, ",") || hasCountSuffix(line)
}

func isStandaloneLine(line string) bool {
	for _, m := range standaloneMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// splitStockList 去掉尾部 (N) 计数，再按逗号和 "등" 切分出名字
func splitStockList(line string) []string {
	cleaned := stripCountSuffix(line)

	var names []string
	for _, part := range strings.Split(cleaned, ",") {
		for _, frag := range strings.Split(part, "등") {
			frag = strings.TrimSpace(frag)
			if frag != "" {
				names = append(names, frag)
			}
		}
	}
	return names
}

func hasCountSuffix(line string) bool {
	return stripCountSuffix(line) != strings.TrimSpace(line)
}

// stripCountSuffix 去掉行尾的 "(숫자)"，其他内容不动
func stripCountSuffix(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ")") {
		return s
	}
	open := strings.LastIndex(s, "(")
	if open < 0 {
		return s
	}
	inner := s[open+1 : len(s)-1]
	if inner == "" {
		return s
	}
	for _, r := range inner {
		if r < '0' || r > '9' {
			return s
		}
	}
	return strings.TrimSpace(s[:open])
}
