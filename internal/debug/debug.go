package debug

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugLog keeps the most recent messages for each category. Messages from
// different categories are merged back into arrival order when printed.
type DebugLog struct {
	entries map[string][]entry
	max     int
	seq     uint64
	lock    sync.Mutex
}

type entry struct {
	seq      uint64
	when     time.Time
	category string
	message  string
}

func New(maxEntries int) *DebugLog {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &DebugLog{max: maxEntries, entries: make(map[string][]entry)}
}

func (l *DebugLog) Addf(category, message string, args ...interface{}) {
	l.Add(category, fmt.Sprintf(message, args...))
}

func (l *DebugLog) Add(category, message string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.seq++
	c := append(l.entries[category], entry{l.seq, time.Now(), category, message})
	if len(c) > l.max {
		c = c[len(c)-l.max:]
	}
	l.entries[category] = c
}

func (l *DebugLog) Categories() []string {
	l.lock.Lock()
	defer l.lock.Unlock()

	c := make([]string, 0, len(l.entries))
	for k := range l.entries {
		c = append(c, k)
	}
	sort.Strings(c)
	return c
}

// Len returns the number of retained messages in the given categories, or in all of
// them when none are given.
func (l *DebugLog) Len(categories ...string) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return len(l.collect(categories))
}

// String merges the logs of the requested categories (all when none are given) into
// one multi-line log. The oldest retained entry of each category is marked.
// Format:
// 2022-05-21T12:43:12.123 <category><first> Message
func (l *DebugLog) String(categories ...string) string {
	l.lock.Lock()
	defer l.lock.Unlock()

	all := l.collect(categories)
	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })

	seen := map[string]bool{}
	var buf bytes.Buffer
	for _, e := range all {
		s := format(e, !seen[e.category])
		seen[e.category] = true
		buf.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			buf.WriteRune('\n')
		}
	}
	return buf.String()
}

func (l *DebugLog) collect(categories []string) []entry {
	var all []entry
	if len(categories) == 0 {
		for _, c := range l.entries {
			all = append(all, c...)
		}
		return all
	}
	for _, cat := range categories {
		all = append(all, l.entries[cat]...)
	}
	return all
}

func format(e entry, first bool) string {
	f := ""
	if first {
		f = "<first>"
	}
	return fmt.Sprintf("%s <%s>%s %s", e.when.Format("2006-01-02T15:04:05.000"), e.category, f, e.message)
}
