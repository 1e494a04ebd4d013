package repository

// CreateTaskOptions holds the parameters for creating a task in Memos.
type CreateTaskOptions struct {
	Content    string   // Full Markdown content body
	Tags       []string // Tag strings like "#priority/high"
	Visibility string   // "PRIVATE" or "PUBLIC" (default: "PRIVATE")
}

// ListTasksOptions holds the parameters for listing tasks from Memos.
type ListTasksOptions struct {
	Tag   string // Filter by a specific tag, without '#'
	Limit int    // Max number of results (default 20)
}
