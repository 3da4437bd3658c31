package util

import (
	"time"
)

// EncodeCursor 将行的创建时间编码为游标字符串
func EncodeCursor(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// DecodeCursor 将前端传来的游标字符串解码为时间，空游标返回 nil
func DecodeCursor(cursor string) (*time.Time, error) {
	if cursor == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
