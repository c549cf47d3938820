// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plandeck/plandeck/ent/event"
	"github.com/plandeck/plandeck/ent/plan"
	"github.com/plandeck/plandeck/ent/predicate"
	"github.com/plandeck/plandeck/ent/sheet"
	"github.com/plandeck/plandeck/ent/stagejob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent    = "Event"
	TypePlan     = "Plan"
	TypeSheet    = "Sheet"
	TypeStageJob = "StageJob"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	organization_id *string
	plan_id         *string
	name            *string
	channel         *string
	dedupe_key      *string
	payload         *json.RawMessage
	appendpayload   json.RawMessage
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *EventMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *EventMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *EventMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetPlanID sets the "plan_id" field.
func (m *EventMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *EventMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *EventMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetName sets the "name" field.
func (m *EventMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EventMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EventMutation) ResetName() {
	m.name = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *EventMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *EventMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDedupeKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (m *EventMutation) ClearDedupeKey() {
	m.dedupe_key = nil
	m.clearedFields[event.FieldDedupeKey] = struct{}{}
}

// DedupeKeyCleared returns if the "dedupe_key" field was cleared in this mutation.
func (m *EventMutation) DedupeKeyCleared() bool {
	_, ok := m.clearedFields[event.FieldDedupeKey]
	return ok
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *EventMutation) ResetDedupeKey() {
	m.dedupe_key = nil
	delete(m.clearedFields, event.FieldDedupeKey)
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *EventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *EventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.organization_id != nil {
		fields = append(fields, event.FieldOrganizationID)
	}
	if m.plan_id != nil {
		fields = append(fields, event.FieldPlanID)
	}
	if m.name != nil {
		fields = append(fields, event.FieldName)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.dedupe_key != nil {
		fields = append(fields, event.FieldDedupeKey)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldOrganizationID:
		return m.OrganizationID()
	case event.FieldPlanID:
		return m.PlanID()
	case event.FieldName:
		return m.Name()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldDedupeKey:
		return m.DedupeKey()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case event.FieldPlanID:
		return m.OldPlanID(ctx)
	case event.FieldName:
		return m.OldName(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case event.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case event.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldDedupeKey) {
		fields = append(fields, event.FieldDedupeKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldDedupeKey:
		m.ClearDedupeKey()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case event.FieldPlanID:
		m.ResetPlanID()
		return nil
	case event.FieldName:
		m.ResetName()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// PlanMutation represents an operation that mutates the Plan nodes in the graph.
type PlanMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	project_id               *string
	organization_id          *string
	name                     *string
	total_sheets             *int
	addtotal_sheets          *int
	status                   *plan.Status
	generated_images         *[]string
	appendgenerated_images   []string
	extracted_metadata       *[]string
	appendextracted_metadata []string
	valid_sheets             *[]string
	appendvalid_sheets       []string
	sheet_number_map         *map[string]string
	detected_callouts        *[]string
	appenddetected_callouts  []string
	detected_layouts         *[]string
	appenddetected_layouts   []string
	generated_tiles          *[]string
	appendgenerated_tiles    []string
	last_error               *string
	created_at               *time.Time
	deadline_at              *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Plan, error)
	predicates               []predicate.Plan
}

var _ ent.Mutation = (*PlanMutation)(nil)

// planOption allows management of the mutation configuration using functional options.
type planOption func(*PlanMutation)

// newPlanMutation creates new mutation for the Plan entity.
func newPlanMutation(c config, op Op, opts ...planOption) *PlanMutation {
	m := &PlanMutation{
		config:        c,
		op:            op,
		typ:           TypePlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanID sets the ID field of the mutation.
func withPlanID(id string) planOption {
	return func(m *PlanMutation) {
		var (
			err   error
			once  sync.Once
			value *Plan
		)
		m.oldValue = func(ctx context.Context) (*Plan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Plan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlan sets the old Plan of the mutation.
func withPlan(node *Plan) planOption {
	return func(m *PlanMutation) {
		m.oldValue = func(context.Context) (*Plan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Plan entities.
func (m *PlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Plan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *PlanMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *PlanMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *PlanMutation) ResetProjectID() {
	m.project_id = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *PlanMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *PlanMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *PlanMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetName sets the "name" field.
func (m *PlanMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PlanMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *PlanMutation) ClearName() {
	m.name = nil
	m.clearedFields[plan.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *PlanMutation) NameCleared() bool {
	_, ok := m.clearedFields[plan.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *PlanMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, plan.FieldName)
}

// SetTotalSheets sets the "total_sheets" field.
func (m *PlanMutation) SetTotalSheets(i int) {
	m.total_sheets = &i
	m.addtotal_sheets = nil
}

// TotalSheets returns the value of the "total_sheets" field in the mutation.
func (m *PlanMutation) TotalSheets() (r int, exists bool) {
	v := m.total_sheets
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSheets returns the old "total_sheets" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldTotalSheets(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSheets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSheets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSheets: %w", err)
	}
	return oldValue.TotalSheets, nil
}

// AddTotalSheets adds i to the "total_sheets" field.
func (m *PlanMutation) AddTotalSheets(i int) {
	if m.addtotal_sheets != nil {
		*m.addtotal_sheets += i
	} else {
		m.addtotal_sheets = &i
	}
}

// AddedTotalSheets returns the value that was added to the "total_sheets" field in this mutation.
func (m *PlanMutation) AddedTotalSheets() (r int, exists bool) {
	v := m.addtotal_sheets
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSheets resets all changes to the "total_sheets" field.
func (m *PlanMutation) ResetTotalSheets() {
	m.total_sheets = nil
	m.addtotal_sheets = nil
}

// SetStatus sets the "status" field.
func (m *PlanMutation) SetStatus(pl plan.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanMutation) Status() (r plan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStatus(ctx context.Context) (v plan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanMutation) ResetStatus() {
	m.status = nil
}

// SetGeneratedImages sets the "generated_images" field.
func (m *PlanMutation) SetGeneratedImages(s []string) {
	m.generated_images = &s
	m.appendgenerated_images = nil
}

// GeneratedImages returns the value of the "generated_images" field in the mutation.
func (m *PlanMutation) GeneratedImages() (r []string, exists bool) {
	v := m.generated_images
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedImages returns the old "generated_images" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldGeneratedImages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedImages: %w", err)
	}
	return oldValue.GeneratedImages, nil
}

// AppendGeneratedImages adds s to the "generated_images" field.
func (m *PlanMutation) AppendGeneratedImages(s []string) {
	m.appendgenerated_images = append(m.appendgenerated_images, s...)
}

// AppendedGeneratedImages returns the list of values that were appended to the "generated_images" field in this mutation.
func (m *PlanMutation) AppendedGeneratedImages() ([]string, bool) {
	if len(m.appendgenerated_images) == 0 {
		return nil, false
	}
	return m.appendgenerated_images, true
}

// ClearGeneratedImages clears the value of the "generated_images" field.
func (m *PlanMutation) ClearGeneratedImages() {
	m.generated_images = nil
	m.appendgenerated_images = nil
	m.clearedFields[plan.FieldGeneratedImages] = struct{}{}
}

// GeneratedImagesCleared returns if the "generated_images" field was cleared in this mutation.
func (m *PlanMutation) GeneratedImagesCleared() bool {
	_, ok := m.clearedFields[plan.FieldGeneratedImages]
	return ok
}

// ResetGeneratedImages resets all changes to the "generated_images" field.
func (m *PlanMutation) ResetGeneratedImages() {
	m.generated_images = nil
	m.appendgenerated_images = nil
	delete(m.clearedFields, plan.FieldGeneratedImages)
}

// SetExtractedMetadata sets the "extracted_metadata" field.
func (m *PlanMutation) SetExtractedMetadata(s []string) {
	m.extracted_metadata = &s
	m.appendextracted_metadata = nil
}

// ExtractedMetadata returns the value of the "extracted_metadata" field in the mutation.
func (m *PlanMutation) ExtractedMetadata() (r []string, exists bool) {
	v := m.extracted_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedMetadata returns the old "extracted_metadata" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldExtractedMetadata(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedMetadata: %w", err)
	}
	return oldValue.ExtractedMetadata, nil
}

// AppendExtractedMetadata adds s to the "extracted_metadata" field.
func (m *PlanMutation) AppendExtractedMetadata(s []string) {
	m.appendextracted_metadata = append(m.appendextracted_metadata, s...)
}

// AppendedExtractedMetadata returns the list of values that were appended to the "extracted_metadata" field in this mutation.
func (m *PlanMutation) AppendedExtractedMetadata() ([]string, bool) {
	if len(m.appendextracted_metadata) == 0 {
		return nil, false
	}
	return m.appendextracted_metadata, true
}

// ClearExtractedMetadata clears the value of the "extracted_metadata" field.
func (m *PlanMutation) ClearExtractedMetadata() {
	m.extracted_metadata = nil
	m.appendextracted_metadata = nil
	m.clearedFields[plan.FieldExtractedMetadata] = struct{}{}
}

// ExtractedMetadataCleared returns if the "extracted_metadata" field was cleared in this mutation.
func (m *PlanMutation) ExtractedMetadataCleared() bool {
	_, ok := m.clearedFields[plan.FieldExtractedMetadata]
	return ok
}

// ResetExtractedMetadata resets all changes to the "extracted_metadata" field.
func (m *PlanMutation) ResetExtractedMetadata() {
	m.extracted_metadata = nil
	m.appendextracted_metadata = nil
	delete(m.clearedFields, plan.FieldExtractedMetadata)
}

// SetValidSheets sets the "valid_sheets" field.
func (m *PlanMutation) SetValidSheets(s []string) {
	m.valid_sheets = &s
	m.appendvalid_sheets = nil
}

// ValidSheets returns the value of the "valid_sheets" field in the mutation.
func (m *PlanMutation) ValidSheets() (r []string, exists bool) {
	v := m.valid_sheets
	if v == nil {
		return
	}
	return *v, true
}

// OldValidSheets returns the old "valid_sheets" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldValidSheets(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidSheets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidSheets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidSheets: %w", err)
	}
	return oldValue.ValidSheets, nil
}

// AppendValidSheets adds s to the "valid_sheets" field.
func (m *PlanMutation) AppendValidSheets(s []string) {
	m.appendvalid_sheets = append(m.appendvalid_sheets, s...)
}

// AppendedValidSheets returns the list of values that were appended to the "valid_sheets" field in this mutation.
func (m *PlanMutation) AppendedValidSheets() ([]string, bool) {
	if len(m.appendvalid_sheets) == 0 {
		return nil, false
	}
	return m.appendvalid_sheets, true
}

// ClearValidSheets clears the value of the "valid_sheets" field.
func (m *PlanMutation) ClearValidSheets() {
	m.valid_sheets = nil
	m.appendvalid_sheets = nil
	m.clearedFields[plan.FieldValidSheets] = struct{}{}
}

// ValidSheetsCleared returns if the "valid_sheets" field was cleared in this mutation.
func (m *PlanMutation) ValidSheetsCleared() bool {
	_, ok := m.clearedFields[plan.FieldValidSheets]
	return ok
}

// ResetValidSheets resets all changes to the "valid_sheets" field.
func (m *PlanMutation) ResetValidSheets() {
	m.valid_sheets = nil
	m.appendvalid_sheets = nil
	delete(m.clearedFields, plan.FieldValidSheets)
}

// SetSheetNumberMap sets the "sheet_number_map" field.
func (m *PlanMutation) SetSheetNumberMap(value map[string]string) {
	m.sheet_number_map = &value
}

// SheetNumberMap returns the value of the "sheet_number_map" field in the mutation.
func (m *PlanMutation) SheetNumberMap() (r map[string]string, exists bool) {
	v := m.sheet_number_map
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetNumberMap returns the old "sheet_number_map" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldSheetNumberMap(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetNumberMap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetNumberMap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetNumberMap: %w", err)
	}
	return oldValue.SheetNumberMap, nil
}

// ClearSheetNumberMap clears the value of the "sheet_number_map" field.
func (m *PlanMutation) ClearSheetNumberMap() {
	m.sheet_number_map = nil
	m.clearedFields[plan.FieldSheetNumberMap] = struct{}{}
}

// SheetNumberMapCleared returns if the "sheet_number_map" field was cleared in this mutation.
func (m *PlanMutation) SheetNumberMapCleared() bool {
	_, ok := m.clearedFields[plan.FieldSheetNumberMap]
	return ok
}

// ResetSheetNumberMap resets all changes to the "sheet_number_map" field.
func (m *PlanMutation) ResetSheetNumberMap() {
	m.sheet_number_map = nil
	delete(m.clearedFields, plan.FieldSheetNumberMap)
}

// SetDetectedCallouts sets the "detected_callouts" field.
func (m *PlanMutation) SetDetectedCallouts(s []string) {
	m.detected_callouts = &s
	m.appenddetected_callouts = nil
}

// DetectedCallouts returns the value of the "detected_callouts" field in the mutation.
func (m *PlanMutation) DetectedCallouts() (r []string, exists bool) {
	v := m.detected_callouts
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedCallouts returns the old "detected_callouts" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldDetectedCallouts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedCallouts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedCallouts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedCallouts: %w", err)
	}
	return oldValue.DetectedCallouts, nil
}

// AppendDetectedCallouts adds s to the "detected_callouts" field.
func (m *PlanMutation) AppendDetectedCallouts(s []string) {
	m.appenddetected_callouts = append(m.appenddetected_callouts, s...)
}

// AppendedDetectedCallouts returns the list of values that were appended to the "detected_callouts" field in this mutation.
func (m *PlanMutation) AppendedDetectedCallouts() ([]string, bool) {
	if len(m.appenddetected_callouts) == 0 {
		return nil, false
	}
	return m.appenddetected_callouts, true
}

// ClearDetectedCallouts clears the value of the "detected_callouts" field.
func (m *PlanMutation) ClearDetectedCallouts() {
	m.detected_callouts = nil
	m.appenddetected_callouts = nil
	m.clearedFields[plan.FieldDetectedCallouts] = struct{}{}
}

// DetectedCalloutsCleared returns if the "detected_callouts" field was cleared in this mutation.
func (m *PlanMutation) DetectedCalloutsCleared() bool {
	_, ok := m.clearedFields[plan.FieldDetectedCallouts]
	return ok
}

// ResetDetectedCallouts resets all changes to the "detected_callouts" field.
func (m *PlanMutation) ResetDetectedCallouts() {
	m.detected_callouts = nil
	m.appenddetected_callouts = nil
	delete(m.clearedFields, plan.FieldDetectedCallouts)
}

// SetDetectedLayouts sets the "detected_layouts" field.
func (m *PlanMutation) SetDetectedLayouts(s []string) {
	m.detected_layouts = &s
	m.appenddetected_layouts = nil
}

// DetectedLayouts returns the value of the "detected_layouts" field in the mutation.
func (m *PlanMutation) DetectedLayouts() (r []string, exists bool) {
	v := m.detected_layouts
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedLayouts returns the old "detected_layouts" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldDetectedLayouts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedLayouts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedLayouts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedLayouts: %w", err)
	}
	return oldValue.DetectedLayouts, nil
}

// AppendDetectedLayouts adds s to the "detected_layouts" field.
func (m *PlanMutation) AppendDetectedLayouts(s []string) {
	m.appenddetected_layouts = append(m.appenddetected_layouts, s...)
}

// AppendedDetectedLayouts returns the list of values that were appended to the "detected_layouts" field in this mutation.
func (m *PlanMutation) AppendedDetectedLayouts() ([]string, bool) {
	if len(m.appenddetected_layouts) == 0 {
		return nil, false
	}
	return m.appenddetected_layouts, true
}

// ClearDetectedLayouts clears the value of the "detected_layouts" field.
func (m *PlanMutation) ClearDetectedLayouts() {
	m.detected_layouts = nil
	m.appenddetected_layouts = nil
	m.clearedFields[plan.FieldDetectedLayouts] = struct{}{}
}

// DetectedLayoutsCleared returns if the "detected_layouts" field was cleared in this mutation.
func (m *PlanMutation) DetectedLayoutsCleared() bool {
	_, ok := m.clearedFields[plan.FieldDetectedLayouts]
	return ok
}

// ResetDetectedLayouts resets all changes to the "detected_layouts" field.
func (m *PlanMutation) ResetDetectedLayouts() {
	m.detected_layouts = nil
	m.appenddetected_layouts = nil
	delete(m.clearedFields, plan.FieldDetectedLayouts)
}

// SetGeneratedTiles sets the "generated_tiles" field.
func (m *PlanMutation) SetGeneratedTiles(s []string) {
	m.generated_tiles = &s
	m.appendgenerated_tiles = nil
}

// GeneratedTiles returns the value of the "generated_tiles" field in the mutation.
func (m *PlanMutation) GeneratedTiles() (r []string, exists bool) {
	v := m.generated_tiles
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedTiles returns the old "generated_tiles" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldGeneratedTiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedTiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedTiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedTiles: %w", err)
	}
	return oldValue.GeneratedTiles, nil
}

// AppendGeneratedTiles adds s to the "generated_tiles" field.
func (m *PlanMutation) AppendGeneratedTiles(s []string) {
	m.appendgenerated_tiles = append(m.appendgenerated_tiles, s...)
}

// AppendedGeneratedTiles returns the list of values that were appended to the "generated_tiles" field in this mutation.
func (m *PlanMutation) AppendedGeneratedTiles() ([]string, bool) {
	if len(m.appendgenerated_tiles) == 0 {
		return nil, false
	}
	return m.appendgenerated_tiles, true
}

// ClearGeneratedTiles clears the value of the "generated_tiles" field.
func (m *PlanMutation) ClearGeneratedTiles() {
	m.generated_tiles = nil
	m.appendgenerated_tiles = nil
	m.clearedFields[plan.FieldGeneratedTiles] = struct{}{}
}

// GeneratedTilesCleared returns if the "generated_tiles" field was cleared in this mutation.
func (m *PlanMutation) GeneratedTilesCleared() bool {
	_, ok := m.clearedFields[plan.FieldGeneratedTiles]
	return ok
}

// ResetGeneratedTiles resets all changes to the "generated_tiles" field.
func (m *PlanMutation) ResetGeneratedTiles() {
	m.generated_tiles = nil
	m.appendgenerated_tiles = nil
	delete(m.clearedFields, plan.FieldGeneratedTiles)
}

// SetLastError sets the "last_error" field.
func (m *PlanMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PlanMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PlanMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[plan.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PlanMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[plan.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PlanMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, plan.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeadlineAt sets the "deadline_at" field.
func (m *PlanMutation) SetDeadlineAt(t time.Time) {
	m.deadline_at = &t
}

// DeadlineAt returns the value of the "deadline_at" field in the mutation.
func (m *PlanMutation) DeadlineAt() (r time.Time, exists bool) {
	v := m.deadline_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineAt returns the old "deadline_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldDeadlineAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineAt: %w", err)
	}
	return oldValue.DeadlineAt, nil
}

// ResetDeadlineAt resets all changes to the "deadline_at" field.
func (m *PlanMutation) ResetDeadlineAt() {
	m.deadline_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlanMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlanMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlanMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[plan.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlanMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[plan.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlanMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, plan.FieldCompletedAt)
}

// Where appends a list predicates to the PlanMutation builder.
func (m *PlanMutation) Where(ps ...predicate.Plan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Plan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Plan).
func (m *PlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.project_id != nil {
		fields = append(fields, plan.FieldProjectID)
	}
	if m.organization_id != nil {
		fields = append(fields, plan.FieldOrganizationID)
	}
	if m.name != nil {
		fields = append(fields, plan.FieldName)
	}
	if m.total_sheets != nil {
		fields = append(fields, plan.FieldTotalSheets)
	}
	if m.status != nil {
		fields = append(fields, plan.FieldStatus)
	}
	if m.generated_images != nil {
		fields = append(fields, plan.FieldGeneratedImages)
	}
	if m.extracted_metadata != nil {
		fields = append(fields, plan.FieldExtractedMetadata)
	}
	if m.valid_sheets != nil {
		fields = append(fields, plan.FieldValidSheets)
	}
	if m.sheet_number_map != nil {
		fields = append(fields, plan.FieldSheetNumberMap)
	}
	if m.detected_callouts != nil {
		fields = append(fields, plan.FieldDetectedCallouts)
	}
	if m.detected_layouts != nil {
		fields = append(fields, plan.FieldDetectedLayouts)
	}
	if m.generated_tiles != nil {
		fields = append(fields, plan.FieldGeneratedTiles)
	}
	if m.last_error != nil {
		fields = append(fields, plan.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, plan.FieldCreatedAt)
	}
	if m.deadline_at != nil {
		fields = append(fields, plan.FieldDeadlineAt)
	}
	if m.completed_at != nil {
		fields = append(fields, plan.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldProjectID:
		return m.ProjectID()
	case plan.FieldOrganizationID:
		return m.OrganizationID()
	case plan.FieldName:
		return m.Name()
	case plan.FieldTotalSheets:
		return m.TotalSheets()
	case plan.FieldStatus:
		return m.Status()
	case plan.FieldGeneratedImages:
		return m.GeneratedImages()
	case plan.FieldExtractedMetadata:
		return m.ExtractedMetadata()
	case plan.FieldValidSheets:
		return m.ValidSheets()
	case plan.FieldSheetNumberMap:
		return m.SheetNumberMap()
	case plan.FieldDetectedCallouts:
		return m.DetectedCallouts()
	case plan.FieldDetectedLayouts:
		return m.DetectedLayouts()
	case plan.FieldGeneratedTiles:
		return m.GeneratedTiles()
	case plan.FieldLastError:
		return m.LastError()
	case plan.FieldCreatedAt:
		return m.CreatedAt()
	case plan.FieldDeadlineAt:
		return m.DeadlineAt()
	case plan.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plan.FieldProjectID:
		return m.OldProjectID(ctx)
	case plan.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case plan.FieldName:
		return m.OldName(ctx)
	case plan.FieldTotalSheets:
		return m.OldTotalSheets(ctx)
	case plan.FieldStatus:
		return m.OldStatus(ctx)
	case plan.FieldGeneratedImages:
		return m.OldGeneratedImages(ctx)
	case plan.FieldExtractedMetadata:
		return m.OldExtractedMetadata(ctx)
	case plan.FieldValidSheets:
		return m.OldValidSheets(ctx)
	case plan.FieldSheetNumberMap:
		return m.OldSheetNumberMap(ctx)
	case plan.FieldDetectedCallouts:
		return m.OldDetectedCallouts(ctx)
	case plan.FieldDetectedLayouts:
		return m.OldDetectedLayouts(ctx)
	case plan.FieldGeneratedTiles:
		return m.OldGeneratedTiles(ctx)
	case plan.FieldLastError:
		return m.OldLastError(ctx)
	case plan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plan.FieldDeadlineAt:
		return m.OldDeadlineAt(ctx)
	case plan.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Plan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plan.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case plan.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case plan.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case plan.FieldTotalSheets:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSheets(v)
		return nil
	case plan.FieldStatus:
		v, ok := value.(plan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plan.FieldGeneratedImages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedImages(v)
		return nil
	case plan.FieldExtractedMetadata:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedMetadata(v)
		return nil
	case plan.FieldValidSheets:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidSheets(v)
		return nil
	case plan.FieldSheetNumberMap:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetNumberMap(v)
		return nil
	case plan.FieldDetectedCallouts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedCallouts(v)
		return nil
	case plan.FieldDetectedLayouts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedLayouts(v)
		return nil
	case plan.FieldGeneratedTiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedTiles(v)
		return nil
	case plan.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case plan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plan.FieldDeadlineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineAt(v)
		return nil
	case plan.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_sheets != nil {
		fields = append(fields, plan.FieldTotalSheets)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldTotalSheets:
		return m.AddedTotalSheets()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plan.FieldTotalSheets:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSheets(v)
		return nil
	}
	return fmt.Errorf("unknown Plan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plan.FieldName) {
		fields = append(fields, plan.FieldName)
	}
	if m.FieldCleared(plan.FieldGeneratedImages) {
		fields = append(fields, plan.FieldGeneratedImages)
	}
	if m.FieldCleared(plan.FieldExtractedMetadata) {
		fields = append(fields, plan.FieldExtractedMetadata)
	}
	if m.FieldCleared(plan.FieldValidSheets) {
		fields = append(fields, plan.FieldValidSheets)
	}
	if m.FieldCleared(plan.FieldSheetNumberMap) {
		fields = append(fields, plan.FieldSheetNumberMap)
	}
	if m.FieldCleared(plan.FieldDetectedCallouts) {
		fields = append(fields, plan.FieldDetectedCallouts)
	}
	if m.FieldCleared(plan.FieldDetectedLayouts) {
		fields = append(fields, plan.FieldDetectedLayouts)
	}
	if m.FieldCleared(plan.FieldGeneratedTiles) {
		fields = append(fields, plan.FieldGeneratedTiles)
	}
	if m.FieldCleared(plan.FieldLastError) {
		fields = append(fields, plan.FieldLastError)
	}
	if m.FieldCleared(plan.FieldCompletedAt) {
		fields = append(fields, plan.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanMutation) ClearField(name string) error {
	switch name {
	case plan.FieldName:
		m.ClearName()
		return nil
	case plan.FieldGeneratedImages:
		m.ClearGeneratedImages()
		return nil
	case plan.FieldExtractedMetadata:
		m.ClearExtractedMetadata()
		return nil
	case plan.FieldValidSheets:
		m.ClearValidSheets()
		return nil
	case plan.FieldSheetNumberMap:
		m.ClearSheetNumberMap()
		return nil
	case plan.FieldDetectedCallouts:
		m.ClearDetectedCallouts()
		return nil
	case plan.FieldDetectedLayouts:
		m.ClearDetectedLayouts()
		return nil
	case plan.FieldGeneratedTiles:
		m.ClearGeneratedTiles()
		return nil
	case plan.FieldLastError:
		m.ClearLastError()
		return nil
	case plan.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanMutation) ResetField(name string) error {
	switch name {
	case plan.FieldProjectID:
		m.ResetProjectID()
		return nil
	case plan.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case plan.FieldName:
		m.ResetName()
		return nil
	case plan.FieldTotalSheets:
		m.ResetTotalSheets()
		return nil
	case plan.FieldStatus:
		m.ResetStatus()
		return nil
	case plan.FieldGeneratedImages:
		m.ResetGeneratedImages()
		return nil
	case plan.FieldExtractedMetadata:
		m.ResetExtractedMetadata()
		return nil
	case plan.FieldValidSheets:
		m.ResetValidSheets()
		return nil
	case plan.FieldSheetNumberMap:
		m.ResetSheetNumberMap()
		return nil
	case plan.FieldDetectedCallouts:
		m.ResetDetectedCallouts()
		return nil
	case plan.FieldDetectedLayouts:
		m.ResetDetectedLayouts()
		return nil
	case plan.FieldGeneratedTiles:
		m.ResetGeneratedTiles()
		return nil
	case plan.FieldLastError:
		m.ResetLastError()
		return nil
	case plan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plan.FieldDeadlineAt:
		m.ResetDeadlineAt()
		return nil
	case plan.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Plan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Plan edge %s", name)
}

// SheetMutation represents an operation that mutates the Sheet nodes in the graph.
type SheetMutation struct {
	config
	op              Op
	typ             string
	id              *string
	plan_id         *string
	project_id      *string
	organization_id *string
	sheet_id        *string
	page_number     *int
	addpage_number  *int
	sheet_number    *string
	title           *string
	discipline      *string
	is_valid        *bool
	width           *int
	addwidth        *int
	height          *int
	addheight       *int
	image_path      *string
	tiles_path      *string
	min_zoom        *int
	addmin_zoom     *int
	max_zoom        *int
	addmax_zoom     *int
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Sheet, error)
	predicates      []predicate.Sheet
}

var _ ent.Mutation = (*SheetMutation)(nil)

// sheetOption allows management of the mutation configuration using functional options.
type sheetOption func(*SheetMutation)

// newSheetMutation creates new mutation for the Sheet entity.
func newSheetMutation(c config, op Op, opts ...sheetOption) *SheetMutation {
	m := &SheetMutation{
		config:        c,
		op:            op,
		typ:           TypeSheet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSheetID sets the ID field of the mutation.
func withSheetID(id string) sheetOption {
	return func(m *SheetMutation) {
		var (
			err   error
			once  sync.Once
			value *Sheet
		)
		m.oldValue = func(ctx context.Context) (*Sheet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sheet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSheet sets the old Sheet of the mutation.
func withSheet(node *Sheet) sheetOption {
	return func(m *SheetMutation) {
		m.oldValue = func(context.Context) (*Sheet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SheetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SheetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sheet entities.
func (m *SheetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SheetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SheetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sheet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *SheetMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *SheetMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *SheetMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *SheetMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SheetMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SheetMutation) ResetProjectID() {
	m.project_id = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *SheetMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *SheetMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *SheetMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetSheetID sets the "sheet_id" field.
func (m *SheetMutation) SetSheetID(s string) {
	m.sheet_id = &s
}

// SheetID returns the value of the "sheet_id" field in the mutation.
func (m *SheetMutation) SheetID() (r string, exists bool) {
	v := m.sheet_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetID returns the old "sheet_id" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldSheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetID: %w", err)
	}
	return oldValue.SheetID, nil
}

// ResetSheetID resets all changes to the "sheet_id" field.
func (m *SheetMutation) ResetSheetID() {
	m.sheet_id = nil
}

// SetPageNumber sets the "page_number" field.
func (m *SheetMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *SheetMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *SheetMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *SheetMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *SheetMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetSheetNumber sets the "sheet_number" field.
func (m *SheetMutation) SetSheetNumber(s string) {
	m.sheet_number = &s
}

// SheetNumber returns the value of the "sheet_number" field in the mutation.
func (m *SheetMutation) SheetNumber() (r string, exists bool) {
	v := m.sheet_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetNumber returns the old "sheet_number" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldSheetNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetNumber: %w", err)
	}
	return oldValue.SheetNumber, nil
}

// ClearSheetNumber clears the value of the "sheet_number" field.
func (m *SheetMutation) ClearSheetNumber() {
	m.sheet_number = nil
	m.clearedFields[sheet.FieldSheetNumber] = struct{}{}
}

// SheetNumberCleared returns if the "sheet_number" field was cleared in this mutation.
func (m *SheetMutation) SheetNumberCleared() bool {
	_, ok := m.clearedFields[sheet.FieldSheetNumber]
	return ok
}

// ResetSheetNumber resets all changes to the "sheet_number" field.
func (m *SheetMutation) ResetSheetNumber() {
	m.sheet_number = nil
	delete(m.clearedFields, sheet.FieldSheetNumber)
}

// SetTitle sets the "title" field.
func (m *SheetMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SheetMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SheetMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[sheet.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SheetMutation) TitleCleared() bool {
	_, ok := m.clearedFields[sheet.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SheetMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, sheet.FieldTitle)
}

// SetDiscipline sets the "discipline" field.
func (m *SheetMutation) SetDiscipline(s string) {
	m.discipline = &s
}

// Discipline returns the value of the "discipline" field in the mutation.
func (m *SheetMutation) Discipline() (r string, exists bool) {
	v := m.discipline
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscipline returns the old "discipline" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldDiscipline(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscipline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscipline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscipline: %w", err)
	}
	return oldValue.Discipline, nil
}

// ClearDiscipline clears the value of the "discipline" field.
func (m *SheetMutation) ClearDiscipline() {
	m.discipline = nil
	m.clearedFields[sheet.FieldDiscipline] = struct{}{}
}

// DisciplineCleared returns if the "discipline" field was cleared in this mutation.
func (m *SheetMutation) DisciplineCleared() bool {
	_, ok := m.clearedFields[sheet.FieldDiscipline]
	return ok
}

// ResetDiscipline resets all changes to the "discipline" field.
func (m *SheetMutation) ResetDiscipline() {
	m.discipline = nil
	delete(m.clearedFields, sheet.FieldDiscipline)
}

// SetIsValid sets the "is_valid" field.
func (m *SheetMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *SheetMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *SheetMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetWidth sets the "width" field.
func (m *SheetMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *SheetMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *SheetMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *SheetMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ClearWidth clears the value of the "width" field.
func (m *SheetMutation) ClearWidth() {
	m.width = nil
	m.addwidth = nil
	m.clearedFields[sheet.FieldWidth] = struct{}{}
}

// WidthCleared returns if the "width" field was cleared in this mutation.
func (m *SheetMutation) WidthCleared() bool {
	_, ok := m.clearedFields[sheet.FieldWidth]
	return ok
}

// ResetWidth resets all changes to the "width" field.
func (m *SheetMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
	delete(m.clearedFields, sheet.FieldWidth)
}

// SetHeight sets the "height" field.
func (m *SheetMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *SheetMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *SheetMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *SheetMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *SheetMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[sheet.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *SheetMutation) HeightCleared() bool {
	_, ok := m.clearedFields[sheet.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *SheetMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, sheet.FieldHeight)
}

// SetImagePath sets the "image_path" field.
func (m *SheetMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *SheetMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ClearImagePath clears the value of the "image_path" field.
func (m *SheetMutation) ClearImagePath() {
	m.image_path = nil
	m.clearedFields[sheet.FieldImagePath] = struct{}{}
}

// ImagePathCleared returns if the "image_path" field was cleared in this mutation.
func (m *SheetMutation) ImagePathCleared() bool {
	_, ok := m.clearedFields[sheet.FieldImagePath]
	return ok
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *SheetMutation) ResetImagePath() {
	m.image_path = nil
	delete(m.clearedFields, sheet.FieldImagePath)
}

// SetTilesPath sets the "tiles_path" field.
func (m *SheetMutation) SetTilesPath(s string) {
	m.tiles_path = &s
}

// TilesPath returns the value of the "tiles_path" field in the mutation.
func (m *SheetMutation) TilesPath() (r string, exists bool) {
	v := m.tiles_path
	if v == nil {
		return
	}
	return *v, true
}

// OldTilesPath returns the old "tiles_path" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldTilesPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTilesPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTilesPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTilesPath: %w", err)
	}
	return oldValue.TilesPath, nil
}

// ClearTilesPath clears the value of the "tiles_path" field.
func (m *SheetMutation) ClearTilesPath() {
	m.tiles_path = nil
	m.clearedFields[sheet.FieldTilesPath] = struct{}{}
}

// TilesPathCleared returns if the "tiles_path" field was cleared in this mutation.
func (m *SheetMutation) TilesPathCleared() bool {
	_, ok := m.clearedFields[sheet.FieldTilesPath]
	return ok
}

// ResetTilesPath resets all changes to the "tiles_path" field.
func (m *SheetMutation) ResetTilesPath() {
	m.tiles_path = nil
	delete(m.clearedFields, sheet.FieldTilesPath)
}

// SetMinZoom sets the "min_zoom" field.
func (m *SheetMutation) SetMinZoom(i int) {
	m.min_zoom = &i
	m.addmin_zoom = nil
}

// MinZoom returns the value of the "min_zoom" field in the mutation.
func (m *SheetMutation) MinZoom() (r int, exists bool) {
	v := m.min_zoom
	if v == nil {
		return
	}
	return *v, true
}

// OldMinZoom returns the old "min_zoom" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldMinZoom(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinZoom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinZoom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinZoom: %w", err)
	}
	return oldValue.MinZoom, nil
}

// AddMinZoom adds i to the "min_zoom" field.
func (m *SheetMutation) AddMinZoom(i int) {
	if m.addmin_zoom != nil {
		*m.addmin_zoom += i
	} else {
		m.addmin_zoom = &i
	}
}

// AddedMinZoom returns the value that was added to the "min_zoom" field in this mutation.
func (m *SheetMutation) AddedMinZoom() (r int, exists bool) {
	v := m.addmin_zoom
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinZoom clears the value of the "min_zoom" field.
func (m *SheetMutation) ClearMinZoom() {
	m.min_zoom = nil
	m.addmin_zoom = nil
	m.clearedFields[sheet.FieldMinZoom] = struct{}{}
}

// MinZoomCleared returns if the "min_zoom" field was cleared in this mutation.
func (m *SheetMutation) MinZoomCleared() bool {
	_, ok := m.clearedFields[sheet.FieldMinZoom]
	return ok
}

// ResetMinZoom resets all changes to the "min_zoom" field.
func (m *SheetMutation) ResetMinZoom() {
	m.min_zoom = nil
	m.addmin_zoom = nil
	delete(m.clearedFields, sheet.FieldMinZoom)
}

// SetMaxZoom sets the "max_zoom" field.
func (m *SheetMutation) SetMaxZoom(i int) {
	m.max_zoom = &i
	m.addmax_zoom = nil
}

// MaxZoom returns the value of the "max_zoom" field in the mutation.
func (m *SheetMutation) MaxZoom() (r int, exists bool) {
	v := m.max_zoom
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxZoom returns the old "max_zoom" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldMaxZoom(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxZoom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxZoom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxZoom: %w", err)
	}
	return oldValue.MaxZoom, nil
}

// AddMaxZoom adds i to the "max_zoom" field.
func (m *SheetMutation) AddMaxZoom(i int) {
	if m.addmax_zoom != nil {
		*m.addmax_zoom += i
	} else {
		m.addmax_zoom = &i
	}
}

// AddedMaxZoom returns the value that was added to the "max_zoom" field in this mutation.
func (m *SheetMutation) AddedMaxZoom() (r int, exists bool) {
	v := m.addmax_zoom
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxZoom clears the value of the "max_zoom" field.
func (m *SheetMutation) ClearMaxZoom() {
	m.max_zoom = nil
	m.addmax_zoom = nil
	m.clearedFields[sheet.FieldMaxZoom] = struct{}{}
}

// MaxZoomCleared returns if the "max_zoom" field was cleared in this mutation.
func (m *SheetMutation) MaxZoomCleared() bool {
	_, ok := m.clearedFields[sheet.FieldMaxZoom]
	return ok
}

// ResetMaxZoom resets all changes to the "max_zoom" field.
func (m *SheetMutation) ResetMaxZoom() {
	m.max_zoom = nil
	m.addmax_zoom = nil
	delete(m.clearedFields, sheet.FieldMaxZoom)
}

// SetCreatedAt sets the "created_at" field.
func (m *SheetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SheetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SheetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SheetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SheetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Sheet entity.
// If the Sheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SheetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SheetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SheetMutation builder.
func (m *SheetMutation) Where(ps ...predicate.Sheet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SheetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SheetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sheet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SheetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SheetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sheet).
func (m *SheetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SheetMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.plan_id != nil {
		fields = append(fields, sheet.FieldPlanID)
	}
	if m.project_id != nil {
		fields = append(fields, sheet.FieldProjectID)
	}
	if m.organization_id != nil {
		fields = append(fields, sheet.FieldOrganizationID)
	}
	if m.sheet_id != nil {
		fields = append(fields, sheet.FieldSheetID)
	}
	if m.page_number != nil {
		fields = append(fields, sheet.FieldPageNumber)
	}
	if m.sheet_number != nil {
		fields = append(fields, sheet.FieldSheetNumber)
	}
	if m.title != nil {
		fields = append(fields, sheet.FieldTitle)
	}
	if m.discipline != nil {
		fields = append(fields, sheet.FieldDiscipline)
	}
	if m.is_valid != nil {
		fields = append(fields, sheet.FieldIsValid)
	}
	if m.width != nil {
		fields = append(fields, sheet.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, sheet.FieldHeight)
	}
	if m.image_path != nil {
		fields = append(fields, sheet.FieldImagePath)
	}
	if m.tiles_path != nil {
		fields = append(fields, sheet.FieldTilesPath)
	}
	if m.min_zoom != nil {
		fields = append(fields, sheet.FieldMinZoom)
	}
	if m.max_zoom != nil {
		fields = append(fields, sheet.FieldMaxZoom)
	}
	if m.created_at != nil {
		fields = append(fields, sheet.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sheet.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SheetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sheet.FieldPlanID:
		return m.PlanID()
	case sheet.FieldProjectID:
		return m.ProjectID()
	case sheet.FieldOrganizationID:
		return m.OrganizationID()
	case sheet.FieldSheetID:
		return m.SheetID()
	case sheet.FieldPageNumber:
		return m.PageNumber()
	case sheet.FieldSheetNumber:
		return m.SheetNumber()
	case sheet.FieldTitle:
		return m.Title()
	case sheet.FieldDiscipline:
		return m.Discipline()
	case sheet.FieldIsValid:
		return m.IsValid()
	case sheet.FieldWidth:
		return m.Width()
	case sheet.FieldHeight:
		return m.Height()
	case sheet.FieldImagePath:
		return m.ImagePath()
	case sheet.FieldTilesPath:
		return m.TilesPath()
	case sheet.FieldMinZoom:
		return m.MinZoom()
	case sheet.FieldMaxZoom:
		return m.MaxZoom()
	case sheet.FieldCreatedAt:
		return m.CreatedAt()
	case sheet.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SheetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sheet.FieldPlanID:
		return m.OldPlanID(ctx)
	case sheet.FieldProjectID:
		return m.OldProjectID(ctx)
	case sheet.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case sheet.FieldSheetID:
		return m.OldSheetID(ctx)
	case sheet.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case sheet.FieldSheetNumber:
		return m.OldSheetNumber(ctx)
	case sheet.FieldTitle:
		return m.OldTitle(ctx)
	case sheet.FieldDiscipline:
		return m.OldDiscipline(ctx)
	case sheet.FieldIsValid:
		return m.OldIsValid(ctx)
	case sheet.FieldWidth:
		return m.OldWidth(ctx)
	case sheet.FieldHeight:
		return m.OldHeight(ctx)
	case sheet.FieldImagePath:
		return m.OldImagePath(ctx)
	case sheet.FieldTilesPath:
		return m.OldTilesPath(ctx)
	case sheet.FieldMinZoom:
		return m.OldMinZoom(ctx)
	case sheet.FieldMaxZoom:
		return m.OldMaxZoom(ctx)
	case sheet.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sheet.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sheet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SheetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sheet.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case sheet.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case sheet.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case sheet.FieldSheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetID(v)
		return nil
	case sheet.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case sheet.FieldSheetNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetNumber(v)
		return nil
	case sheet.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case sheet.FieldDiscipline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscipline(v)
		return nil
	case sheet.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case sheet.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case sheet.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case sheet.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case sheet.FieldTilesPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTilesPath(v)
		return nil
	case sheet.FieldMinZoom:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinZoom(v)
		return nil
	case sheet.FieldMaxZoom:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxZoom(v)
		return nil
	case sheet.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sheet.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sheet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SheetMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, sheet.FieldPageNumber)
	}
	if m.addwidth != nil {
		fields = append(fields, sheet.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, sheet.FieldHeight)
	}
	if m.addmin_zoom != nil {
		fields = append(fields, sheet.FieldMinZoom)
	}
	if m.addmax_zoom != nil {
		fields = append(fields, sheet.FieldMaxZoom)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SheetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sheet.FieldPageNumber:
		return m.AddedPageNumber()
	case sheet.FieldWidth:
		return m.AddedWidth()
	case sheet.FieldHeight:
		return m.AddedHeight()
	case sheet.FieldMinZoom:
		return m.AddedMinZoom()
	case sheet.FieldMaxZoom:
		return m.AddedMaxZoom()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SheetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sheet.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case sheet.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case sheet.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case sheet.FieldMinZoom:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinZoom(v)
		return nil
	case sheet.FieldMaxZoom:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxZoom(v)
		return nil
	}
	return fmt.Errorf("unknown Sheet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SheetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sheet.FieldSheetNumber) {
		fields = append(fields, sheet.FieldSheetNumber)
	}
	if m.FieldCleared(sheet.FieldTitle) {
		fields = append(fields, sheet.FieldTitle)
	}
	if m.FieldCleared(sheet.FieldDiscipline) {
		fields = append(fields, sheet.FieldDiscipline)
	}
	if m.FieldCleared(sheet.FieldWidth) {
		fields = append(fields, sheet.FieldWidth)
	}
	if m.FieldCleared(sheet.FieldHeight) {
		fields = append(fields, sheet.FieldHeight)
	}
	if m.FieldCleared(sheet.FieldImagePath) {
		fields = append(fields, sheet.FieldImagePath)
	}
	if m.FieldCleared(sheet.FieldTilesPath) {
		fields = append(fields, sheet.FieldTilesPath)
	}
	if m.FieldCleared(sheet.FieldMinZoom) {
		fields = append(fields, sheet.FieldMinZoom)
	}
	if m.FieldCleared(sheet.FieldMaxZoom) {
		fields = append(fields, sheet.FieldMaxZoom)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SheetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SheetMutation) ClearField(name string) error {
	switch name {
	case sheet.FieldSheetNumber:
		m.ClearSheetNumber()
		return nil
	case sheet.FieldTitle:
		m.ClearTitle()
		return nil
	case sheet.FieldDiscipline:
		m.ClearDiscipline()
		return nil
	case sheet.FieldWidth:
		m.ClearWidth()
		return nil
	case sheet.FieldHeight:
		m.ClearHeight()
		return nil
	case sheet.FieldImagePath:
		m.ClearImagePath()
		return nil
	case sheet.FieldTilesPath:
		m.ClearTilesPath()
		return nil
	case sheet.FieldMinZoom:
		m.ClearMinZoom()
		return nil
	case sheet.FieldMaxZoom:
		m.ClearMaxZoom()
		return nil
	}
	return fmt.Errorf("unknown Sheet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SheetMutation) ResetField(name string) error {
	switch name {
	case sheet.FieldPlanID:
		m.ResetPlanID()
		return nil
	case sheet.FieldProjectID:
		m.ResetProjectID()
		return nil
	case sheet.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case sheet.FieldSheetID:
		m.ResetSheetID()
		return nil
	case sheet.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case sheet.FieldSheetNumber:
		m.ResetSheetNumber()
		return nil
	case sheet.FieldTitle:
		m.ResetTitle()
		return nil
	case sheet.FieldDiscipline:
		m.ResetDiscipline()
		return nil
	case sheet.FieldIsValid:
		m.ResetIsValid()
		return nil
	case sheet.FieldWidth:
		m.ResetWidth()
		return nil
	case sheet.FieldHeight:
		m.ResetHeight()
		return nil
	case sheet.FieldImagePath:
		m.ResetImagePath()
		return nil
	case sheet.FieldTilesPath:
		m.ResetTilesPath()
		return nil
	case sheet.FieldMinZoom:
		m.ResetMinZoom()
		return nil
	case sheet.FieldMaxZoom:
		m.ResetMaxZoom()
		return nil
	case sheet.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sheet.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Sheet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SheetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SheetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SheetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SheetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SheetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SheetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SheetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Sheet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SheetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Sheet edge %s", name)
}

// StageJobMutation represents an operation that mutates the StageJob nodes in the graph.
type StageJobMutation struct {
	config
	op              Op
	typ             string
	id              *string
	stage           *stagejob.Stage
	status          *stagejob.Status
	payload         *json.RawMessage
	appendpayload   json.RawMessage
	organization_id *string
	project_id      *string
	plan_id         *string
	sheet_id        *string
	attempts        *int
	addattempts     *int
	available_at    *time.Time
	claimed_by      *string
	claimed_at      *time.Time
	completed_at    *time.Time
	last_error      *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*StageJob, error)
	predicates      []predicate.StageJob
}

var _ ent.Mutation = (*StageJobMutation)(nil)

// stagejobOption allows management of the mutation configuration using functional options.
type stagejobOption func(*StageJobMutation)

// newStageJobMutation creates new mutation for the StageJob entity.
func newStageJobMutation(c config, op Op, opts ...stagejobOption) *StageJobMutation {
	m := &StageJobMutation{
		config:        c,
		op:            op,
		typ:           TypeStageJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageJobID sets the ID field of the mutation.
func withStageJobID(id string) stagejobOption {
	return func(m *StageJobMutation) {
		var (
			err   error
			once  sync.Once
			value *StageJob
		)
		m.oldValue = func(ctx context.Context) (*StageJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageJob sets the old StageJob of the mutation.
func withStageJob(node *StageJob) stagejobOption {
	return func(m *StageJobMutation) {
		m.oldValue = func(context.Context) (*StageJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageJob entities.
func (m *StageJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStage sets the "stage" field.
func (m *StageJobMutation) SetStage(s stagejob.Stage) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *StageJobMutation) Stage() (r stagejob.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldStage(ctx context.Context) (v stagejob.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *StageJobMutation) ResetStage() {
	m.stage = nil
}

// SetStatus sets the "status" field.
func (m *StageJobMutation) SetStatus(s stagejob.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageJobMutation) Status() (r stagejob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldStatus(ctx context.Context) (v stagejob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageJobMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *StageJobMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StageJobMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *StageJobMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *StageJobMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *StageJobMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *StageJobMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *StageJobMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *StageJobMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *StageJobMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *StageJobMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *StageJobMutation) ResetProjectID() {
	m.project_id = nil
}

// SetPlanID sets the "plan_id" field.
func (m *StageJobMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *StageJobMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *StageJobMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetSheetID sets the "sheet_id" field.
func (m *StageJobMutation) SetSheetID(s string) {
	m.sheet_id = &s
}

// SheetID returns the value of the "sheet_id" field in the mutation.
func (m *StageJobMutation) SheetID() (r string, exists bool) {
	v := m.sheet_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetID returns the old "sheet_id" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldSheetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetID: %w", err)
	}
	return oldValue.SheetID, nil
}

// ClearSheetID clears the value of the "sheet_id" field.
func (m *StageJobMutation) ClearSheetID() {
	m.sheet_id = nil
	m.clearedFields[stagejob.FieldSheetID] = struct{}{}
}

// SheetIDCleared returns if the "sheet_id" field was cleared in this mutation.
func (m *StageJobMutation) SheetIDCleared() bool {
	_, ok := m.clearedFields[stagejob.FieldSheetID]
	return ok
}

// ResetSheetID resets all changes to the "sheet_id" field.
func (m *StageJobMutation) ResetSheetID() {
	m.sheet_id = nil
	delete(m.clearedFields, stagejob.FieldSheetID)
}

// SetAttempts sets the "attempts" field.
func (m *StageJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *StageJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *StageJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *StageJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *StageJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetAvailableAt sets the "available_at" field.
func (m *StageJobMutation) SetAvailableAt(t time.Time) {
	m.available_at = &t
}

// AvailableAt returns the value of the "available_at" field in the mutation.
func (m *StageJobMutation) AvailableAt() (r time.Time, exists bool) {
	v := m.available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableAt returns the old "available_at" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldAvailableAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableAt: %w", err)
	}
	return oldValue.AvailableAt, nil
}

// ResetAvailableAt resets all changes to the "available_at" field.
func (m *StageJobMutation) ResetAvailableAt() {
	m.available_at = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *StageJobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *StageJobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *StageJobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[stagejob.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *StageJobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[stagejob.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *StageJobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, stagejob.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *StageJobMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *StageJobMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *StageJobMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[stagejob.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *StageJobMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[stagejob.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *StageJobMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, stagejob.FieldClaimedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stagejob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stagejob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stagejob.FieldCompletedAt)
}

// SetLastError sets the "last_error" field.
func (m *StageJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *StageJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *StageJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[stagejob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *StageJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[stagejob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *StageJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, stagejob.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageJob entity.
// If the StageJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StageJobMutation builder.
func (m *StageJobMutation) Where(ps ...predicate.StageJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageJob).
func (m *StageJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.stage != nil {
		fields = append(fields, stagejob.FieldStage)
	}
	if m.status != nil {
		fields = append(fields, stagejob.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, stagejob.FieldPayload)
	}
	if m.organization_id != nil {
		fields = append(fields, stagejob.FieldOrganizationID)
	}
	if m.project_id != nil {
		fields = append(fields, stagejob.FieldProjectID)
	}
	if m.plan_id != nil {
		fields = append(fields, stagejob.FieldPlanID)
	}
	if m.sheet_id != nil {
		fields = append(fields, stagejob.FieldSheetID)
	}
	if m.attempts != nil {
		fields = append(fields, stagejob.FieldAttempts)
	}
	if m.available_at != nil {
		fields = append(fields, stagejob.FieldAvailableAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, stagejob.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, stagejob.FieldClaimedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stagejob.FieldCompletedAt)
	}
	if m.last_error != nil {
		fields = append(fields, stagejob.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, stagejob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagejob.FieldStage:
		return m.Stage()
	case stagejob.FieldStatus:
		return m.Status()
	case stagejob.FieldPayload:
		return m.Payload()
	case stagejob.FieldOrganizationID:
		return m.OrganizationID()
	case stagejob.FieldProjectID:
		return m.ProjectID()
	case stagejob.FieldPlanID:
		return m.PlanID()
	case stagejob.FieldSheetID:
		return m.SheetID()
	case stagejob.FieldAttempts:
		return m.Attempts()
	case stagejob.FieldAvailableAt:
		return m.AvailableAt()
	case stagejob.FieldClaimedBy:
		return m.ClaimedBy()
	case stagejob.FieldClaimedAt:
		return m.ClaimedAt()
	case stagejob.FieldCompletedAt:
		return m.CompletedAt()
	case stagejob.FieldLastError:
		return m.LastError()
	case stagejob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagejob.FieldStage:
		return m.OldStage(ctx)
	case stagejob.FieldStatus:
		return m.OldStatus(ctx)
	case stagejob.FieldPayload:
		return m.OldPayload(ctx)
	case stagejob.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case stagejob.FieldProjectID:
		return m.OldProjectID(ctx)
	case stagejob.FieldPlanID:
		return m.OldPlanID(ctx)
	case stagejob.FieldSheetID:
		return m.OldSheetID(ctx)
	case stagejob.FieldAttempts:
		return m.OldAttempts(ctx)
	case stagejob.FieldAvailableAt:
		return m.OldAvailableAt(ctx)
	case stagejob.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case stagejob.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case stagejob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stagejob.FieldLastError:
		return m.OldLastError(ctx)
	case stagejob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagejob.FieldStage:
		v, ok := value.(stagejob.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case stagejob.FieldStatus:
		v, ok := value.(stagejob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stagejob.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case stagejob.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case stagejob.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case stagejob.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case stagejob.FieldSheetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetID(v)
		return nil
	case stagejob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case stagejob.FieldAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableAt(v)
		return nil
	case stagejob.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case stagejob.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case stagejob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stagejob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case stagejob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, stagejob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stagejob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stagejob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown StageJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagejob.FieldSheetID) {
		fields = append(fields, stagejob.FieldSheetID)
	}
	if m.FieldCleared(stagejob.FieldClaimedBy) {
		fields = append(fields, stagejob.FieldClaimedBy)
	}
	if m.FieldCleared(stagejob.FieldClaimedAt) {
		fields = append(fields, stagejob.FieldClaimedAt)
	}
	if m.FieldCleared(stagejob.FieldCompletedAt) {
		fields = append(fields, stagejob.FieldCompletedAt)
	}
	if m.FieldCleared(stagejob.FieldLastError) {
		fields = append(fields, stagejob.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageJobMutation) ClearField(name string) error {
	switch name {
	case stagejob.FieldSheetID:
		m.ClearSheetID()
		return nil
	case stagejob.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case stagejob.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case stagejob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case stagejob.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown StageJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageJobMutation) ResetField(name string) error {
	switch name {
	case stagejob.FieldStage:
		m.ResetStage()
		return nil
	case stagejob.FieldStatus:
		m.ResetStatus()
		return nil
	case stagejob.FieldPayload:
		m.ResetPayload()
		return nil
	case stagejob.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case stagejob.FieldProjectID:
		m.ResetProjectID()
		return nil
	case stagejob.FieldPlanID:
		m.ResetPlanID()
		return nil
	case stagejob.FieldSheetID:
		m.ResetSheetID()
		return nil
	case stagejob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case stagejob.FieldAvailableAt:
		m.ResetAvailableAt()
		return nil
	case stagejob.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case stagejob.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case stagejob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stagejob.FieldLastError:
		m.ResetLastError()
		return nil
	case stagejob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StageJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StageJob edge %s", name)
}
