package game

import (
	"testing"
)

func TestClockStartsAtZero(t *testing.T) {
	c := NewClock()
	if c.Now() != 0 {
		t.Errorf("Expected new clock to start at 0, got %v", c.Now())
	}
}

func TestClockAdvanceAccumulates(t *testing.T) {
	c := NewClock()
	c.Advance(1.0 / 60.0)
	c.Advance(1.0 / 60.0)
	c.Advance(0.5)

	want := 1.0/60.0 + 1.0/60.0 + 0.5
	if c.Now() != want {
		t.Errorf("Expected clock at %v, got %v", want, c.Now())
	}
}

func TestClockSince(t *testing.T) {
	c := NewClock()
	c.Advance(2.0)
	stamp := c.Now()
	c.Advance(3.5)

	if got := c.Since(stamp); got != 3.5 {
		t.Errorf("Expected Since to return 3.5, got %v", got)
	}

	// 负时间戳表示"开局即就绪"的冷却基准，Since 对其同样成立
	if got := c.Since(-60); got != 65.5 {
		t.Errorf("Expected Since(-60) to return 65.5, got %v", got)
	}
}
