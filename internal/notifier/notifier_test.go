package notifier

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/clockings/internal/models"
)

func stubSend(t *testing.T, err error) *[]string {
	t.Helper()
	var sent []string
	orig := send
	send = func(title, body string) error {
		sent = append(sent, title+"|"+body)
		return err
	}
	t.Cleanup(func() { send = orig })
	return &sent
}

func TestNotify(t *testing.T) {
	sent := stubSend(t, nil)
	if !Notify("title", "body") {
		t.Error("Notify should report success")
	}
	if len(*sent) != 1 || (*sent)[0] != "title|body" {
		t.Errorf("sent = %v", *sent)
	}
}

func TestNotifyFailureIsNotFatal(t *testing.T) {
	stubSend(t, errors.New("no notification daemon"))
	if Notify("title", "body") {
		t.Error("Notify should report failure")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name      string
		summary   models.MonthlySummary
		wantTitle string
		wantBody  []string
	}{
		{
			name:      "ahead",
			summary:   models.MonthlySummary{Year: 2024, Month: time.March, Variance: 90 * time.Minute, WorkedDays: 10},
			wantTitle: "March 2024: Ahead",
			wantBody:  []string{"01:30:00 Ahead", "10 worked days", "March - 2024.txt"},
		},
		{
			name:      "owing with incomplete days",
			summary:   models.MonthlySummary{Year: 2024, Month: time.March, Variance: -15 * time.Minute, WorkedDays: 3, IncompleteDays: 2},
			wantTitle: "March 2024: Owing",
			wantBody:  []string{"00:15:00 Owing", "(2 incomplete)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := Message("March - 2024.txt", tt.summary)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			for _, want := range tt.wantBody {
				if !strings.Contains(body, want) {
					t.Errorf("body %q missing %q", body, want)
				}
			}
		})
	}
}

func TestNotifyReport(t *testing.T) {
	sent := stubSend(t, nil)
	NotifyReport("March - 2024.txt", models.MonthlySummary{Year: 2024, Month: time.March})
	if len(*sent) != 1 || !strings.HasPrefix((*sent)[0], "March 2024: Owing|") {
		t.Errorf("sent = %v", *sent)
	}
}
