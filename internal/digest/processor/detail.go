package processor

import (
	"strings"

	"stock-digest/internal/digest/model"
)

// capPrefix 明细行里市值字段的字面前缀，存在则剥掉
const capPrefix = "시총"

// DetailMap 종목명 -> 明细的映射。
// add 是 insert-if-absent 语义：同名后写的条目直接忽略，
// 噪声报告里靠后的重复条目通常是截断或残缺的，首条为准。
type DetailMap struct {
	byName map[string]model.StockDetail
}

func (d *DetailMap) Get(name string) (model.StockDetail, bool) {
	det, ok := d.byName[name]
	return det, ok
}

func (d *DetailMap) Len() int {
	return len(d.byName)
}

func (d *DetailMap) add(name string, det model.StockDetail) {
	if _, exists := d.byName[name]; exists {
		return
	}
	d.byName[name] = det
}

// ExtractStockDetails 扫描正文里的编号明细行，行格式：
//
//	<번호>. <종목명> (<상승률>) : <분류>, <시총>[, ...]
//
// 提取与摘要区边界无关，裁剪前后的文本都能扫。
func ExtractStockDetails(text string) *DetailMap {
	d := &DetailMap{byName: make(map[string]model.StockDetail)}
	for _, line := range strings.Split(text, "\n") {
		name, det, ok := parseDetailLine(strings.TrimSpace(line))
		if ok {
			d.add(name, det)
		}
	}
	return d
}

// parseDetailLine 逐字段切分单条明细行。
// 字段名字写死在代码里，不靠正则分组的位置对号入座。
func parseDetailLine(line string) (string, model.StockDetail, bool) {
	// 行首序号 + 点
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != '.' {
		return "", model.StockDetail{}, false
	}
	rest := line[i+1:]

	// 종목명：到第一个左括号为止
	open := strings.Index(rest, "(")
	if open < 0 {
		return "", model.StockDetail{}, false
	}
	name := strings.TrimSpace(rest[:open])
	if name == "" {
		return "", model.StockDetail{}, false
	}

	// 상승률：括号内原文保留，百分号也不动
	closing := strings.Index(rest[open:], ")")
	if closing < 0 {
		return "", model.StockDetail{}, false
	}
	rate := strings.TrimSpace(rest[open+1 : open+closing])
	if rate == "" {
		return "", model.StockDetail{}, false
	}

	// 冒号后是 분류, 시총[, ...]，市值取第二个逗号字段
	tail := rest[open+closing+1:]
	colon := strings.Index(tail, ":")
	if colon < 0 {
		return "", model.StockDetail{}, false
	}
	fields := strings.Split(tail[colon+1:], ",")
	if len(fields) < 2 {
		return "", model.StockDetail{}, false
	}
	capText := strings.TrimSpace(fields[1])
	capText = strings.TrimSpace(strings.TrimPrefix(capText, capPrefix))
	if capText == "" {
		return "", model.StockDetail{}, false
	}

	return name, model.StockDetail{Rate: rate, MarketCapText: capText}, true
}
