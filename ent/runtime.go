// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/event"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityentryFields := schema.ActivityEntry{}.Fields()
	_ = activityentryFields
	// activityentryDescCreatedAt is the schema descriptor for created_at field.
	activityentryDescCreatedAt := activityentryFields[9].Descriptor()
	// activityentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityentry.DefaultCreatedAt = activityentryDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	pipelinejobFields := schema.PipelineJob{}.Fields()
	_ = pipelinejobFields
	// pipelinejobDescExecutionMode is the schema descriptor for execution_mode field.
	pipelinejobDescExecutionMode := pipelinejobFields[11].Descriptor()
	// pipelinejob.DefaultExecutionMode holds the default value on creation for the execution_mode field.
	pipelinejob.DefaultExecutionMode = pipelinejobDescExecutionMode.Default.(string)
	// pipelinejobDescCreatedAt is the schema descriptor for created_at field.
	pipelinejobDescCreatedAt := pipelinejobFields[17].Descriptor()
	// pipelinejob.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinejob.DefaultCreatedAt = pipelinejobDescCreatedAt.Default.(func() time.Time)
	pipelinesessionFields := schema.PipelineSession{}.Fields()
	_ = pipelinesessionFields
	// pipelinesessionDescCreatedAt is the schema descriptor for created_at field.
	pipelinesessionDescCreatedAt := pipelinesessionFields[20].Descriptor()
	// pipelinesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinesession.DefaultCreatedAt = pipelinesessionDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescJobCounter is the schema descriptor for job_counter field.
	projectDescJobCounter := projectFields[3].Descriptor()
	// project.DefaultJobCounter holds the default value on creation for the job_counter field.
	project.DefaultJobCounter = projectDescJobCounter.Default.(int)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
}
