package services

import "strconv"

// Option structs carry the already-validated query parameters of a
// visualization request. Each exposes params() — the sorted-key material the
// cache decorator builds its key from; zero values are omitted so "no filter"
// and "filter absent" share a cache entry.

// NetworkOptions filters the skill network.
type NetworkOptions struct {
	MinProficiency int    // 1-10, 0 = unset
	CategoryFilter string // empty = all categories
}

func (o NetworkOptions) params() map[string]string {
	p := map[string]string{}
	if o.MinProficiency > 0 {
		p["min_proficiency"] = strconv.Itoa(o.MinProficiency)
	}
	if o.CategoryFilter != "" {
		p["category_filter"] = o.CategoryFilter
	}
	return p
}

func (o NetworkOptions) filtered() bool {
	return o.MinProficiency > 0 || o.CategoryFilter != ""
}

// TimelineOptions bounds the progress timeline. Dates are ISO "2006-01-02"
// strings, validated at the HTTP layer.
type TimelineOptions struct {
	StartDate string
	EndDate   string
}

func (o TimelineOptions) params() map[string]string {
	p := map[string]string{}
	if o.StartDate != "" {
		p["start_date"] = o.StartDate
	}
	if o.EndDate != "" {
		p["end_date"] = o.EndDate
	}
	return p
}

func (o TimelineOptions) filtered() bool {
	return o.StartDate != "" || o.EndDate != ""
}

// RadarOptions filters the skill radar.
type RadarOptions struct {
	CategoryFilter string
}

func (o RadarOptions) params() map[string]string {
	p := map[string]string{}
	if o.CategoryFilter != "" {
		p["category_filter"] = o.CategoryFilter
	}
	return p
}

func (o RadarOptions) filtered() bool {
	return o.CategoryFilter != ""
}

// GoalOptions filters the goal-progress chart. Completed goals are included
// unless IncludeCompleted is explicitly false.
type GoalOptions struct {
	CategoryFilter   string
	IncludeCompleted *bool
}

func (o GoalOptions) includeCompleted() bool {
	return o.IncludeCompleted == nil || *o.IncludeCompleted
}

func (o GoalOptions) params() map[string]string {
	p := map[string]string{}
	if o.CategoryFilter != "" {
		p["category_filter"] = o.CategoryFilter
	}
	if o.IncludeCompleted != nil {
		p["include_completed"] = strconv.FormatBool(*o.IncludeCompleted)
	}
	return p
}

func (o GoalOptions) filtered() bool {
	return o.CategoryFilter != "" || (o.IncludeCompleted != nil && !*o.IncludeCompleted)
}
