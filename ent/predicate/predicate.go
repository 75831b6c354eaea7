// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEntry is the predicate function for activityentry builders.
type ActivityEntry func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// PipelineJob is the predicate function for pipelinejob builders.
type PipelineJob func(*sql.Selector)

// PipelineSession is the predicate function for pipelinesession builders.
type PipelineSession func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)
