// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiAnalysesColumns holds the columns for the "ai_analyses" table.
	AiAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "problem_clusters", Type: field.TypeJSON},
		{Name: "product_ideas", Type: field.TypeJSON},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
		{Name: "model", Type: field.TypeString},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "search_id", Type: field.TypeString, Unique: true},
	}
	// AiAnalysesTable holds the schema information for the "ai_analyses" table.
	AiAnalysesTable = &schema.Table{
		Name:       "ai_analyses",
		Columns:    AiAnalysesColumns,
		PrimaryKey: []*schema.Column{AiAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ai_analyses_searches_analysis",
				Columns:    []*schema.Column{AiAnalysesColumns[8]},
				RefColumns: []*schema.Column{SearchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// APIUsagesColumns holds the columns for the "api_usages" table.
	APIUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "service", Type: field.TypeString},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "search_id", Type: field.TypeString},
	}
	// APIUsagesTable holds the schema information for the "api_usages" table.
	APIUsagesTable = &schema.Table{
		Name:       "api_usages",
		Columns:    APIUsagesColumns,
		PrimaryKey: []*schema.Column{APIUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_usages_searches_usages",
				Columns:    []*schema.Column{APIUsagesColumns[5]},
				RefColumns: []*schema.Column{SearchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apiusage_search_id",
				Unique:  false,
				Columns: []*schema.Column{APIUsagesColumns[5]},
			},
		},
	}
	// JobLogsColumns holds the columns for the "job_logs" table.
	JobLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "search_id", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"info", "warn", "error"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobLogsTable holds the schema information for the "job_logs" table.
	JobLogsTable = &schema.Table{
		Name:       "job_logs",
		Columns:    JobLogsColumns,
		PrimaryKey: []*schema.Column{JobLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "joblog_search_id",
				Unique:  false,
				Columns: []*schema.Column{JobLogsColumns[1]},
			},
			{
				Name:    "joblog_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobLogsColumns[5]},
			},
		},
	}
	// PainPointsColumns holds the columns for the "pain_points" table.
	PainPointsColumns = []*schema.Column{
		{Name: "pain_point_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "source_tag", Type: field.TypeString},
		{Name: "mentions_count", Type: field.TypeInt, Default: 0},
		{Name: "severity_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "search_id", Type: field.TypeString},
	}
	// PainPointsTable holds the schema information for the "pain_points" table.
	PainPointsTable = &schema.Table{
		Name:       "pain_points",
		Columns:    PainPointsColumns,
		PrimaryKey: []*schema.Column{PainPointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pain_points_searches_pain_points",
				Columns:    []*schema.Column{PainPointsColumns[6]},
				RefColumns: []*schema.Column{SearchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "painpoint_search_id",
				Unique:  false,
				Columns: []*schema.Column{PainPointsColumns[6]},
			},
		},
	}
	// PainPointQuotesColumns holds the columns for the "pain_point_quotes" table.
	PainPointQuotesColumns = []*schema.Column{
		{Name: "quote_id", Type: field.TypeString, Unique: true},
		{Name: "quote_text", Type: field.TypeString, Size: 2147483647},
		{Name: "author_handle", Type: field.TypeString, Nullable: true},
		{Name: "upvotes", Type: field.TypeInt, Default: 0},
		{Name: "permalink", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pain_point_id", Type: field.TypeString},
	}
	// PainPointQuotesTable holds the schema information for the "pain_point_quotes" table.
	PainPointQuotesTable = &schema.Table{
		Name:       "pain_point_quotes",
		Columns:    PainPointQuotesColumns,
		PrimaryKey: []*schema.Column{PainPointQuotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pain_point_quotes_pain_points_quotes",
				Columns:    []*schema.Column{PainPointQuotesColumns[6]},
				RefColumns: []*schema.Column{PainPointsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "painpointquote_pain_point_id",
				Unique:  false,
				Columns: []*schema.Column{PainPointQuotesColumns[6]},
			},
		},
	}
	// SearchesColumns holds the columns for the "searches" table.
	SearchesColumns = []*schema.Column{
		{Name: "search_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "tags", Type: field.TypeJSON},
		{Name: "time_range", Type: field.TypeEnum, Enums: []string{"week", "month", "year", "all"}, Default: "month"},
		{Name: "sort_by", Type: field.TypeEnum, Enums: []string{"relevance", "upvotes", "recency"}, Default: "relevance"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "min_upvotes", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SearchesTable holds the schema information for the "searches" table.
	SearchesTable = &schema.Table{
		Name:       "searches",
		Columns:    SearchesColumns,
		PrimaryKey: []*schema.Column{SearchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "search_status",
				Unique:  false,
				Columns: []*schema.Column{SearchesColumns[5]},
			},
			{
				Name:    "search_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{SearchesColumns[10]},
			},
			{
				Name:    "search_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SearchesColumns[5], SearchesColumns[12]},
			},
			{
				Name:    "search_status_last_retry_at",
				Unique:  false,
				Columns: []*schema.Column{SearchesColumns[5], SearchesColumns[9]},
			},
		},
	}
	// SearchEventsColumns holds the columns for the "search_events" table.
	SearchEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"stories", "comments", "analysis"}},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"story_discovered", "comment_discovered", "phase_progress", "search_status"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "search_id", Type: field.TypeString},
	}
	// SearchEventsTable holds the schema information for the "search_events" table.
	SearchEventsTable = &schema.Table{
		Name:       "search_events",
		Columns:    SearchEventsColumns,
		PrimaryKey: []*schema.Column{SearchEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "search_events_searches_events",
				Columns:    []*schema.Column{SearchEventsColumns[6]},
				RefColumns: []*schema.Column{SearchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "searchevent_search_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SearchEventsColumns[6], SearchEventsColumns[5]},
			},
			{
				Name:    "searchevent_search_id_id",
				Unique:  false,
				Columns: []*schema.Column{SearchEventsColumns[6], SearchEventsColumns[0]},
			},
		},
	}
	// SearchSummariesColumns holds the columns for the "search_summaries" table.
	SearchSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "total_posts", Type: field.TypeInt, Default: 0},
		{Name: "total_comments", Type: field.TypeInt, Default: 0},
		{Name: "total_mentions", Type: field.TypeInt, Default: 0},
		{Name: "source_tags", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "search_id", Type: field.TypeString, Unique: true},
	}
	// SearchSummariesTable holds the schema information for the "search_summaries" table.
	SearchSummariesTable = &schema.Table{
		Name:       "search_summaries",
		Columns:    SearchSummariesColumns,
		PrimaryKey: []*schema.Column{SearchSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "search_summaries_searches_summary",
				Columns:    []*schema.Column{SearchSummariesColumns[6]},
				RefColumns: []*schema.Column{SearchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiAnalysesTable,
		APIUsagesTable,
		JobLogsTable,
		PainPointsTable,
		PainPointQuotesTable,
		SearchesTable,
		SearchEventsTable,
		SearchSummariesTable,
	}
)

func init() {
	AiAnalysesTable.ForeignKeys[0].RefTable = SearchesTable
	APIUsagesTable.ForeignKeys[0].RefTable = SearchesTable
	PainPointsTable.ForeignKeys[0].RefTable = SearchesTable
	PainPointQuotesTable.ForeignKeys[0].RefTable = PainPointsTable
	SearchEventsTable.ForeignKeys[0].RefTable = SearchesTable
	SearchSummariesTable.ForeignKeys[0].RefTable = SearchesTable
}
