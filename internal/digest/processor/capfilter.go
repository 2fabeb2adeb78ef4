package processor

import (
	"strconv"
	"strings"

	"stock-digest/internal/digest/model"
)

// ParseMarketCap 把 "1조 500억" 这样的市值文本归一化成以 억 为单位的整数：
// 조 部分 ×10000 加上 억 部分。解析不出来记 0。
// 억 后缀可以省略，裸数字也按 억 计。
func ParseMarketCap(text string) int64 {
	rest := text
	var total int64

	if idx := strings.Index(rest, "조"); idx >= 0 {
		if v, ok := trailingNumber(rest[:idx]); ok {
			total += v * 10000
			rest = rest[idx+len("조"):]
		}
	}
	if v, ok := leadingNumber(rest); ok {
		total += v
	}
	return total
}

// FilterByMarketCap 按阈值（단위: 억）裁剪报告，在副本上操作。
// 低于阈值的条目删掉，被清空的分类整块删掉；
// 개별주/기타这类本来就没有列表的块原样保留。
// 持久化的报告不会被改动，同一阈值下重复过滤结果不变。
func FilterByMarketCap(r model.Report, threshold int64) model.Report {
	out := r
	out.Categories = nil

	for _, blk := range r.Categories {
		if len(blk.Stocks) == 0 {
			out.Categories = append(out.Categories, blk)
			continue
		}

		kept := make([]model.StockEntry, 0, len(blk.Stocks))
		for _, s := range blk.Stocks {
			if ParseMarketCap(s.MarketCapText) >= threshold {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			continue
		}
		nb := blk
		nb.Stocks = kept
		out.Categories = append(out.Categories, nb)
	}
	return out
}

// trailingNumber 片段末尾连续的数字（允许千分位逗号）
func trailingNumber(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	start := len(s)
	for start > 0 {
		c := s[start-1]
		if (c >= '0' && c <= '9') || c == ',' {
			start--
			continue
		}
		break
	}
	return parseDigits(s[start:])
}

// leadingNumber 片段开头连续的数字（允许千分位逗号）
func leadingNumber(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == ',' {
			end++
			continue
		}
		break
	}
	return parseDigits(s[:end])
}

func parseDigits(s string) (int64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
