// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/plandeck/plandeck/ent/event"
	"github.com/plandeck/plandeck/ent/plan"
	"github.com/plandeck/plandeck/ent/schema"
	"github.com/plandeck/plandeck/ent/sheet"
	"github.com/plandeck/plandeck/ent/stagejob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[6].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescTotalSheets is the schema descriptor for total_sheets field.
	planDescTotalSheets := planFields[4].Descriptor()
	// plan.DefaultTotalSheets holds the default value on creation for the total_sheets field.
	plan.DefaultTotalSheets = planDescTotalSheets.Default.(int)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[14].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	sheetFields := schema.Sheet{}.Fields()
	_ = sheetFields
	// sheetDescIsValid is the schema descriptor for is_valid field.
	sheetDescIsValid := sheetFields[9].Descriptor()
	// sheet.DefaultIsValid holds the default value on creation for the is_valid field.
	sheet.DefaultIsValid = sheetDescIsValid.Default.(bool)
	// sheetDescCreatedAt is the schema descriptor for created_at field.
	sheetDescCreatedAt := sheetFields[16].Descriptor()
	// sheet.DefaultCreatedAt holds the default value on creation for the created_at field.
	sheet.DefaultCreatedAt = sheetDescCreatedAt.Default.(func() time.Time)
	// sheetDescUpdatedAt is the schema descriptor for updated_at field.
	sheetDescUpdatedAt := sheetFields[17].Descriptor()
	// sheet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sheet.DefaultUpdatedAt = sheetDescUpdatedAt.Default.(func() time.Time)
	// sheet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sheet.UpdateDefaultUpdatedAt = sheetDescUpdatedAt.UpdateDefault.(func() time.Time)
	stagejobFields := schema.StageJob{}.Fields()
	_ = stagejobFields
	// stagejobDescAttempts is the schema descriptor for attempts field.
	stagejobDescAttempts := stagejobFields[8].Descriptor()
	// stagejob.DefaultAttempts holds the default value on creation for the attempts field.
	stagejob.DefaultAttempts = stagejobDescAttempts.Default.(int)
	// stagejobDescAvailableAt is the schema descriptor for available_at field.
	stagejobDescAvailableAt := stagejobFields[9].Descriptor()
	// stagejob.DefaultAvailableAt holds the default value on creation for the available_at field.
	stagejob.DefaultAvailableAt = stagejobDescAvailableAt.Default.(func() time.Time)
	// stagejobDescCreatedAt is the schema descriptor for created_at field.
	stagejobDescCreatedAt := stagejobFields[14].Descriptor()
	// stagejob.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagejob.DefaultCreatedAt = stagejobDescCreatedAt.Default.(func() time.Time)
}
