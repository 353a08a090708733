// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CitationsColumns holds the columns for the "citations" table.
	CitationsColumns = []*schema.Column{
		{Name: "citation_id", Type: field.TypeString, Unique: true},
		{Name: "quote", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "position", Type: field.TypeInt},
		{Name: "url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "report_id", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
	}
	// CitationsTable holds the schema information for the "citations" table.
	CitationsTable = &schema.Table{
		Name:       "citations",
		Columns:    CitationsColumns,
		PrimaryKey: []*schema.Column{CitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "citations_reports_citations",
				Columns:    []*schema.Column{CitationsColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "citations_sources_citations",
				Columns:    []*schema.Column{CitationsColumns[6]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "citation_report_id_position",
				Unique:  true,
				Columns: []*schema.Column{CitationsColumns[5], CitationsColumns[3]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "key_findings", Type: field.TypeJSON, Nullable: true},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_research_sessions_generated_report",
				Columns:    []*schema.Column{ReportsColumns[6]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[5]},
			},
		},
	}
	// ResearchDataColumns holds the columns for the "research_data" table.
	ResearchDataColumns = []*schema.Column{
		{Name: "data_id", Type: field.TypeString, Unique: true},
		{Name: "data_type", Type: field.TypeEnum, Enums: []string{"search_results", "extracted_content", "analysis", "game_plan", "source_content"}},
		{Name: "query", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "relevance_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ResearchDataTable holds the schema information for the "research_data" table.
	ResearchDataTable = &schema.Table{
		Name:       "research_data",
		Columns:    ResearchDataColumns,
		PrimaryKey: []*schema.Column{ResearchDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_data_research_sessions_research_data",
				Columns:    []*schema.Column{ResearchDataColumns[9]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchdata_session_id_data_type_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ResearchDataColumns[9], ResearchDataColumns[1], ResearchDataColumns[5]},
			},
			{
				Name:    "researchdata_session_id_data_type",
				Unique:  false,
				Columns: []*schema.Column{ResearchDataColumns[9], ResearchDataColumns[1]},
			},
			{
				Name:    "researchdata_session_id_relevance_score",
				Unique:  false,
				Columns: []*schema.Column{ResearchDataColumns[9], ResearchDataColumns[7]},
			},
		},
	}
	// ResearchQueriesColumns holds the columns for the "research_queries" table.
	ResearchQueriesColumns = []*schema.Column{
		{Name: "query_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "result_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ResearchQueriesTable holds the schema information for the "research_queries" table.
	ResearchQueriesTable = &schema.Table{
		Name:       "research_queries",
		Columns:    ResearchQueriesColumns,
		PrimaryKey: []*schema.Column{ResearchQueriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_queries_research_sessions_queries",
				Columns:    []*schema.Column{ResearchQueriesColumns[4]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchquery_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchQueriesColumns[4], ResearchQueriesColumns[3]},
			},
		},
	}
	// ResearchSessionsColumns holds the columns for the "research_sessions" table.
	ResearchSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "report_id", Type: field.TypeString, Nullable: true},
		{Name: "retried_from", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// ResearchSessionsTable holds the schema information for the "research_sessions" table.
	ResearchSessionsTable = &schema.Table{
		Name:       "research_sessions",
		Columns:    ResearchSessionsColumns,
		PrimaryKey: []*schema.Column{ResearchSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[1]},
			},
			{
				Name:    "researchsession_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[3]},
			},
			{
				Name:    "researchsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[3], ResearchSessionsColumns[5]},
			},
			{
				Name:    "researchsession_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[1], ResearchSessionsColumns[3]},
			},
			{
				Name:    "researchsession_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[3], ResearchSessionsColumns[12]},
			},
		},
	}
	// SearchHistoryColumns holds the columns for the "search_history" table.
	SearchHistoryColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "result_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// SearchHistoryTable holds the schema information for the "search_history" table.
	SearchHistoryTable = &schema.Table{
		Name:       "search_history",
		Columns:    SearchHistoryColumns,
		PrimaryKey: []*schema.Column{SearchHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "search_history_users_search_history",
				Columns:    []*schema.Column{SearchHistoryColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "searchhistory_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SearchHistoryColumns[4], SearchHistoryColumns[3]},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "source_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString, Size: 2147483647},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "relevance_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "accessed_at", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sources_research_sessions_sources",
				Columns:    []*schema.Column{SourcesColumns[8]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "source_session_id_url",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[8], SourcesColumns[1]},
			},
			{
				Name:    "source_session_id_relevance_score",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[8], SourcesColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// UserSettingsColumns holds the columns for the "user_settings" table.
	UserSettingsColumns = []*schema.Column{
		{Name: "setting_id", Type: field.TypeString, Unique: true},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Unique: true},
	}
	// UserSettingsTable holds the schema information for the "user_settings" table.
	UserSettingsTable = &schema.Table{
		Name:       "user_settings",
		Columns:    UserSettingsColumns,
		PrimaryKey: []*schema.Column{UserSettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_settings_users_settings",
				Columns:    []*schema.Column{UserSettingsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CitationsTable,
		ReportsTable,
		ResearchDataTable,
		ResearchQueriesTable,
		ResearchSessionsTable,
		SearchHistoryTable,
		SourcesTable,
		UsersTable,
		UserSettingsTable,
	}
)

func init() {
	CitationsTable.ForeignKeys[0].RefTable = ReportsTable
	CitationsTable.ForeignKeys[1].RefTable = SourcesTable
	CitationsTable.Annotation = &entsql.Annotation{
		Table: "citations",
	}
	ReportsTable.ForeignKeys[0].RefTable = ResearchSessionsTable
	ReportsTable.Annotation = &entsql.Annotation{
		Table: "reports",
	}
	ResearchDataTable.ForeignKeys[0].RefTable = ResearchSessionsTable
	ResearchDataTable.Annotation = &entsql.Annotation{
		Table: "research_data",
	}
	ResearchQueriesTable.ForeignKeys[0].RefTable = ResearchSessionsTable
	ResearchQueriesTable.Annotation = &entsql.Annotation{
		Table: "research_queries",
	}
	ResearchSessionsTable.Annotation = &entsql.Annotation{
		Table: "research_sessions",
	}
	SearchHistoryTable.ForeignKeys[0].RefTable = UsersTable
	SearchHistoryTable.Annotation = &entsql.Annotation{
		Table: "search_history",
	}
	SourcesTable.ForeignKeys[0].RefTable = ResearchSessionsTable
	SourcesTable.Annotation = &entsql.Annotation{
		Table: "sources",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
	UserSettingsTable.ForeignKeys[0].RefTable = UsersTable
	UserSettingsTable.Annotation = &entsql.Annotation{
		Table: "user_settings",
	}
}
