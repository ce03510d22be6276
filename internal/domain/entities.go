package domain

import "time"

// Report is a named collection of visualizations with publish state.
type Report struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Created        time.Time       `json:"created"`
	Modified       time.Time       `json:"modified"`
	Owner          string          `json:"owner"`
	Workspace      string          `json:"workspace"`
	IsPublished    bool            `json:"isPublished"`
	Visualizations []Visualization `json:"visualizations"`
}

// RecordID implements the collection record contract.
func (r Report) RecordID() string { return r.ID }

// Dashboard references zero or more reports by id.
// The references are weak: deleting a report does not touch them.
type Dashboard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Owner       string    `json:"owner"`
	Workspace   string    `json:"workspace"`
	Reports     []string  `json:"reports"`
}

func (d Dashboard) RecordID() string { return d.ID }

// Dataset describes an external data source registered by a user.
// It is unrelated to the built-in sample corpus served by QueryData.
type Dataset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Source      string        `json:"source"`
	Created     time.Time     `json:"created"`
	Modified    time.Time     `json:"modified"`
	Owner       string        `json:"owner"`
	Size        string        `json:"size"`
	Status      DatasetStatus `json:"status"`
}

func (d Dataset) RecordID() string { return d.ID }

// Workspace groups reports, dashboards and datasets.
// Workspaces are never modified after creation, so there is no Modified field.
type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Members     int       `json:"members"`
	IsDefault   bool      `json:"isDefault"`
}

func (w Workspace) RecordID() string { return w.ID }

// Notification is a message surfaced in the notification panel.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Created time.Time        `json:"created"`
	Read    bool             `json:"read"`
}

func (n Notification) RecordID() string { return n.ID }
