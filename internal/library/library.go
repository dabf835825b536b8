// Package library holds Nano's curated resources and insights. Both
// collections are fixed; filtering never mutates them.
package library

import (
	"slices"
	"strings"
)

// ResourceType is the medium of a resource
type ResourceType string

const (
	TypeArticle ResourceType = "article"
	TypeVideo   ResourceType = "video"
	TypeBook    ResourceType = "book"
	TypeCourse  ResourceType = "course"
	TypeTool    ResourceType = "tool"
)

// ResourceTypes lists every resource type in filter order
var ResourceTypes = []ResourceType{TypeArticle, TypeVideo, TypeBook, TypeCourse, TypeTool}

// Timeframe is the kind of goal a resource suits
type Timeframe string

const (
	ShortTerm Timeframe = "short-term"
	LongTerm  Timeframe = "long-term"
)

// Timeframes lists every timeframe in filter order
var Timeframes = []Timeframe{ShortTerm, LongTerm}

// Label returns the timeframe with a space instead of the hyphen
func (t Timeframe) Label() string {
	return strings.ReplaceAll(string(t), "-", " ")
}

// Difficulty is how demanding the goal a resource suits is
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every difficulty in filter order
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Resource is one entry of the resource library
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url"`
	Tags        []string     `json:"tags"`
	Timeframe   Timeframe    `json:"timeframe"`
	Difficulty  Difficulty   `json:"difficulty"`
	Rating      float64      `json:"rating"`
}

// ResourceFilter narrows the resource library. Zero fields match everything.
type ResourceFilter struct {
	Query      string
	Type       ResourceType
	Timeframe  Timeframe
	Difficulty Difficulty
}

// Matches reports whether r passes every set field of f. The query is
// matched case-insensitively against the title, the description and each tag.
func (f ResourceFilter) Matches(r Resource) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Timeframe != "" && r.Timeframe != f.Timeframe {
		return false
	}
	if f.Difficulty != "" && r.Difficulty != f.Difficulty {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	return slices.ContainsFunc(r.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

// Resources returns the resources that pass f, in library order
func Resources(f ResourceFilter) []Resource {
	var out []Resource
	for _, r := range resources {
		if f.Matches(r) {
			out = append(out, cloneResource(r))
		}
	}
	return out
}

func cloneResource(r Resource) Resource {
	r.Tags = slices.Clone(r.Tags)
	return r
}

// Category groups insights by the area of life they address
type Category string

const (
	CategoryProductivity Category = "productivity"
	CategoryMotivation   Category = "motivation"
	CategoryLearning     Category = "learning"
	CategoryWellness     Category = "wellness"
	CategoryCareer       Category = "career"
)

// Categories lists every insight category in filter order
var Categories = []Category{CategoryProductivity, CategoryMotivation, CategoryLearning, CategoryWellness, CategoryCareer}

// Insight is one piece of advice with concrete steps
type Insight struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	ActionSteps []string `json:"action_steps"`
}

// Insights returns the insights in category ("" for all) whose title
// contains query, ignoring case
func Insights(category Category, query string) []Insight {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Insight
	for _, in := range insights {
		if category != "" && in.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(in.Title), q) {
			continue
		}
		in.ActionSteps = slices.Clone(in.ActionSteps)
		out = append(out, in)
	}
	return out
}
