package service

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
	"time"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

const (
	checkedAtLayout = "02.01.2006 15:04:05 MST"

	msgNoChecksYet = "Проверка ещё не проводилась. Результаты появятся после первого цикла."
)

// problems are rendered before successful ones, empty sections are skipped
//
//nolint:gochecknoglobals // it's template
var digestTemplate = template.Must(template.New("digest").Parse(`Дата и время последней проверки - {{.CheckedAt}}
{{if .Problems}}
❌ Проблемы:
{{range .Problems}}{{.}}
{{end}}{{end}}{{if .Successful}}
✅ Успешно:
{{range .Successful}}{{.}}
{{end}}{{end}}`))

//nolint:gochecknoglobals // it's template
var settingsTemplate = template.Must(template.New("settings").Parse(`Список проверяемых сайтов:
{{range .Endpoints}}{{.}}
{{end}}Периодичность проверки - 1 р. в {{.Interval}}.`))

type digestView struct {
	CheckedAt  string
	Problems   []string
	Successful []string
}

// BuildDigest splits outcomes into problems and successful, keeping the given order in both groups.
func BuildDigest(checkedAt time.Time, outcomes []dal.Outcome) dal.Digest {
	res := dal.Digest{
		CheckedAt:  checkedAt,
		Problems:   make([]dal.Outcome, 0),
		Successful: make([]dal.Outcome, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		if o.Healthy() {
			res.Successful = append(res.Successful, o)
		} else {
			res.Problems = append(res.Problems, o)
		}
	}

	return res
}

// RenderDigest renders a digest for telegram. Timestamp is shown in loc.
func RenderDigest(d dal.Digest, loc *time.Location) (string, error) {
	if d.Empty() {
		return msgNoChecksYet, nil
	}
	if loc == nil {
		loc = time.Local
	}

	view := digestView{
		CheckedAt:  d.CheckedAt.In(loc).Format(checkedAtLayout),
		Problems:   make([]string, len(d.Problems)),
		Successful: make([]string, len(d.Successful)),
	}
	for i, o := range d.Problems {
		view.Problems[i] = outcomeLine(o)
	}
	for i, o := range d.Successful {
		view.Successful[i] = outcomeLine(o)
	}

	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute digest template: %w", err)
	}
	return buf.String(), nil
}

func outcomeLine(o dal.Outcome) string {
	if o.Status == dal.Unreachable {
		if o.Cause == "" {
			return "нет соединения - " + o.URL
		}
		return fmt.Sprintf("нет соединения - %s (%s)", o.URL, o.Cause)
	}
	return fmt.Sprintf("%d - %s", o.Code, o.URL)
}

// RenderSettings lists endpoints and the check interval
func RenderSettings(endpoints []string, interval time.Duration) (string, error) {
	var buf bytes.Buffer
	err := settingsTemplate.Execute(&buf, struct {
		Endpoints []string
		Interval  string
	}{
		Endpoints: endpoints,
		Interval:  FormatInterval(interval),
	})
	if err != nil {
		return "", fmt.Errorf("execute settings template: %w", err)
	}
	return buf.String(), nil
}

// FormatInterval shows intervals shorter than an hour in minutes and the rest in hours,
// e.g. "30 м", "4 ч", "1.5 ч".
func FormatInterval(d time.Duration) string {
	seconds := d.Seconds()
	if seconds < time.Hour.Seconds() {
		return strconv.FormatFloat(seconds/time.Minute.Seconds(), 'f', -1, 64) + " м"
	}
	return strconv.FormatFloat(seconds/time.Hour.Seconds(), 'f', -1, 64) + " ч"
}
