package model

import (
	"time"
)

// 报告来源（enum-as-string 存库）
const (
	SourcePrimary   = "몽당연필" // 主源：蒙当铅笔收盘时况
	SourceSecondary = "이세무사" // 次源：李税务士
)

// StockDetail 编号列表里的单只股票明细。
// rate 与 marketCapText 原样保留，不做数值解析。
type StockDetail struct {
	Rate          string `bson:"rate" json:"rate"`
	MarketCapText string `bson:"market_cap" json:"market_cap"`
}

// StockEntry 渲染时按值内嵌的明细副本，不回指明细表
type StockEntry struct {
	Name          string `bson:"name" json:"name"`
	Rate          string `bson:"rate" json:"rate"`
	MarketCapText string `bson:"market_cap" json:"market_cap"`
}

// CategoryBlock 同一主题下的股票分组。
// stocks 顺序 = 原文首次出现顺序；组内名字唯一。
// 개별주/기타这类独立段落 stocks 为空。
type CategoryBlock struct {
	Label  string       `bson:"label" json:"label"`
	Emoji  string       `bson:"emoji" json:"emoji"`
	Stocks []StockEntry `bson:"stocks,omitempty" json:"stocks,omitempty"`
}

// Report 某来源某自然日合并后的结构化报告。
// ID 取组内最早一条消息（第 1 部分），Date 取最晚一条的时间。
// 按 ID 整行 upsert，同一天重跑直接覆盖旧行。
type Report struct {
	ID         int64           `bson:"_id" json:"id"`
	Date       time.Time       `bson:"date" json:"date"`
	Categories []CategoryBlock `bson:"categories,omitempty" json:"categories,omitempty"`
	Content    string          `bson:"content" json:"content"` // 渲染后的 HTML；解析不出摘要时为清洗后的原文
	Source     string          `bson:"source" json:"source"`
	CreatedAt  time.Time       `bson:"createdAt" json:"created_at"` // UTC
}
