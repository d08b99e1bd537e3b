package domain

import (
	"fmt"
	"time"
)

const compactDateLayout = "20060102"

// ParseCompactDate 解析 YYYYMMDD 格式的日期字符串。
// 格式检查先于其它一切校验：长度不等于 8 或含非数字字符直接拒绝，
// 日历上不存在的日期（如 20181232）同样报 ErrMalformedDate。
func ParseCompactDate(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
	}
	t, err := time.Parse(compactDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}
