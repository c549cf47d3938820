// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "dedupe_key", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[0]},
			},
			{
				Name:    "event_organization_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_plan_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_plan_id_name_dedupe_key",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[3], EventsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "dedupe_key IS NOT NULL",
				},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "total_sheets", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"image_generation", "metadata_extraction", "parallel_detection", "tile_generation", "complete", "failed"}, Default: "image_generation"},
		{Name: "generated_images", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "valid_sheets", Type: field.TypeJSON, Nullable: true},
		{Name: "sheet_number_map", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_callouts", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_layouts", Type: field.TypeJSON, Nullable: true},
		{Name: "generated_tiles", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deadline_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plan_status",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[5]},
			},
			{
				Name:    "plan_organization_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[2], PlansColumns[1]},
			},
			{
				Name:    "plan_status_deadline_at",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[5], PlansColumns[15]},
			},
			{
				Name:    "plan_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[5], PlansColumns[16]},
			},
		},
	}
	// SheetsColumns holds the columns for the "sheets" table.
	SheetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "sheet_id", Type: field.TypeString},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "sheet_number", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "discipline", Type: field.TypeString, Nullable: true},
		{Name: "is_valid", Type: field.TypeBool, Default: false},
		{Name: "width", Type: field.TypeInt, Nullable: true},
		{Name: "height", Type: field.TypeInt, Nullable: true},
		{Name: "image_path", Type: field.TypeString, Nullable: true},
		{Name: "tiles_path", Type: field.TypeString, Nullable: true},
		{Name: "min_zoom", Type: field.TypeInt, Nullable: true},
		{Name: "max_zoom", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SheetsTable holds the schema information for the "sheets" table.
	SheetsTable = &schema.Table{
		Name:       "sheets",
		Columns:    SheetsColumns,
		PrimaryKey: []*schema.Column{SheetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sheet_plan_id_sheet_id",
				Unique:  true,
				Columns: []*schema.Column{SheetsColumns[1], SheetsColumns[4]},
			},
			{
				Name:    "sheet_plan_id_is_valid",
				Unique:  false,
				Columns: []*schema.Column{SheetsColumns[1], SheetsColumns[9]},
			},
		},
	}
	// StageJobsColumns holds the columns for the "stage_jobs" table.
	StageJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"image_generation", "metadata_extraction", "callout_detection", "layout_detection", "tile_generation"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "sheet_id", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "available_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StageJobsTable holds the schema information for the "stage_jobs" table.
	StageJobsTable = &schema.Table{
		Name:       "stage_jobs",
		Columns:    StageJobsColumns,
		PrimaryKey: []*schema.Column{StageJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagejob_stage_status_available_at",
				Unique:  false,
				Columns: []*schema.Column{StageJobsColumns[1], StageJobsColumns[2], StageJobsColumns[9]},
			},
			{
				Name:    "stagejob_plan_id",
				Unique:  false,
				Columns: []*schema.Column{StageJobsColumns[6]},
			},
			{
				Name:    "stagejob_status_claimed_by",
				Unique:  false,
				Columns: []*schema.Column{StageJobsColumns[2], StageJobsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		PlansTable,
		SheetsTable,
		StageJobsTable,
	}
)

func init() {
}
