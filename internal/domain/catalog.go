package domain

import "time"

type EventSort string

const (
	SortEventDate EventSort = "EVENT_DATE"
	SortViews     EventSort = "VIEWS"
)

const DefaultPageSize = 10

type Page struct {
	From int
	Size int
}

type AdminSearch struct {
	Users      []string
	States     []string
	Categories []string
	RangeStart *time.Time
	RangeEnd   *time.Time
	Page       Page
}

type PublicSearch struct {
	Text          string
	Categories    []string
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Sort          EventSort
	Page          Page
}

// Hit is one recorded visit of a public endpoint.
type Hit struct {
	App       string
	URI       string
	IP        string
	Timestamp time.Time
}

type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

type StatsQuery struct {
	Start  time.Time
	End    time.Time
	URIs   []string
	Unique bool
}
