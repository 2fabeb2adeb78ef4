package model

import "time"

// RawMessage 频道原始消息，由外部 transport 提供，进入管道后不再修改
type RawMessage struct {
	ID        int64     `bson:"id" json:"id"` // 源端分配，单调递增且唯一
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Text      string    `bson:"text" json:"text"`
}
