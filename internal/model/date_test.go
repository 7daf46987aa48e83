package model

import (
	"testing"
	"time"
)

// DATE 列经 pgx 驱动读回时是 time.Time，Scan 必须还原成 "YYYY-MM-DD"，
// 否则响应里的日期会变成 RFC3339 文本
func TestDate_ScanTime(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time 应成功: %v", err)
	}
	if d != "2024-01-10" {
		t.Errorf("期望 2024-01-10，实际 %q", d)
	}
}

func TestDate_ScanText(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
	}{
		{"string", "2026-03-02"},
		{"bytes", []byte("2026-03-02")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tc.src); err != nil {
				t.Fatalf("Scan 应成功: %v", err)
			}
			if d != "2026-03-02" {
				t.Errorf("期望 2026-03-02，实际 %q", d)
			}
		})
	}
}

func TestDate_ScanUnsupportedType(t *testing.T) {
	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("Scan int 应返回错误")
	}
}

func TestDate_RoundTrip(t *testing.T) {
	d := Date("2026-03-02")

	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value 应成功: %v", err)
	}
	if v != "2026-03-02" {
		t.Errorf("期望写入 2026-03-02，实际 %v", v)
	}

	day, err := d.Time()
	if err != nil {
		t.Fatalf("Time 应成功: %v", err)
	}
	if got := day.Format(DateLayout); got != "2026-03-02" {
		t.Errorf("期望解析回 2026-03-02，实际 %s", got)
	}
}

func TestDate_TimeInvalid(t *testing.T) {
	if _, err := Date("2024-01-10T00:00:00Z").Time(); err == nil {
		t.Error("非 YYYY-MM-DD 文本应解析失败")
	}
}
