// Package report summarizes a table diff for people and for tools. It lists
// what changed; it does not generate DDL.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pgschema/schemadiff/diff"
	"github.com/pgschema/schemadiff/internal/color"
	"github.com/pgschema/schemadiff/internal/fingerprint"
	"github.com/pgschema/schemadiff/internal/version"
	"github.com/pgschema/schemadiff/ir"
)

// FormatVersion is the version of the JSON report layout
const FormatVersion = "1.0.0"

// Report is the structured summary of one table diff
type Report struct {
	Version           string            `json:"version"`
	SchemadiffVersion string            `json:"schemadiff_version"`
	Table             string            `json:"table"`
	SourceFingerprint string            `json:"source_fingerprint"`
	TargetFingerprint string            `json:"target_fingerprint"`
	Identical         bool              `json:"identical"`
	TableChange       *diff.TableChange `json:"table_change,omitempty"`
	Summary           Summary           `json:"summary"`
	ObjectChanges     []ObjectChange    `json:"object_changes"`
}

// Summary provides counts of changes by type
type Summary struct {
	Add       int                    `json:"add"`
	Change    int                    `json:"change"`
	Destroy   int                    `json:"destroy"`
	Unchanged int                    `json:"unchanged"`
	Total     int                    `json:"total"`
	ByType    map[string]TypeSummary `json:"by_type"`
}

// TypeSummary provides counts for a specific object type
type TypeSummary struct {
	Add       int `json:"add"`
	Change    int `json:"change"`
	Destroy   int `json:"destroy"`
	Unchanged int `json:"unchanged"`
}

// ObjectChange is a single added, altered or dropped element
type ObjectChange struct {
	Address    string   `json:"address"`
	Type       string   `json:"type"`
	Name       string   `json:"name"`
	FormerName string   `json:"former_name,omitempty"`
	Action     string   `json:"action"`
	Attributes []string `json:"attributes,omitempty"`
}

// ObjectType names the element types of a report, in display order
type ObjectType string

const (
	ObjectTypeTable  ObjectType = "tables"
	ObjectTypeColumn ObjectType = "columns"
	ObjectTypeIndex  ObjectType = "indexes"
)

// Report actions
const (
	ActionCreate = "create"
	ActionAlter  = "alter"
	ActionDrop   = "drop"
)

func getObjectOrder() []ObjectType {
	return []ObjectType{ObjectTypeTable, ObjectTypeColumn, ObjectTypeIndex}
}

func objectType(kind diff.Kind) ObjectType {
	if kind == diff.KindIndex {
		return ObjectTypeIndex
	}
	return ObjectTypeColumn
}

// singular returns the label used for one element of the type
func (t ObjectType) singular() string {
	switch t {
	case ObjectTypeTable:
		return "table"
	case ObjectTypeIndex:
		return "index"
	default:
		return "column"
	}
}

// FromTableDiff builds the report of a rich table diff, including table
// attribute changes.
func FromTableDiff(d *diff.TableDiff) (*Report, error) {
	r, err := newReport(nameOf(d.Target, d.Source), d.Source, d.Target)
	if err != nil {
		return nil, err
	}

	if change, changed := d.TableChanges(); changed {
		r.TableChange = &change
		r.add(ObjectChange{
			Address:    r.Table,
			Type:       string(ObjectTypeTable),
			Name:       r.Table,
			FormerName: formerName(nameOf(d.Source, nil), r.Table),
			Action:     ActionAlter,
			Attributes: tableAttributes(change),
		})
	}

	for _, e := range d.Additions {
		r.add(r.elementChange(objectType(e.Kind), e.Name(), "", ActionCreate))
	}
	for _, p := range d.Changes {
		r.add(r.elementChange(objectType(p.Kind()), p.Target.Name(), p.Source.Name(), ActionAlter))
	}
	for _, e := range d.Deletions {
		r.add(r.elementChange(objectType(e.Kind), e.Name(), "", ActionDrop))
	}
	for _, e := range d.Unchanged {
		r.count(objectType(e.Kind), "")
	}

	r.Summary.Total = r.Summary.Add + r.Summary.Change + r.Summary.Destroy
	return r, nil
}

// FromTableSchemaDiff builds the report of a reduced table diff
func FromTableSchemaDiff(d *diff.TableSchemaDiff) (*Report, error) {
	name := ""
	if d.Target != nil {
		name = d.Target.Name
	} else if d.Source != nil {
		name = d.Source.Name
	}

	r, err := newReport(name, d.Source, d.Target)
	if err != nil {
		return nil, err
	}

	for _, c := range d.Additions {
		r.add(r.elementChange(ObjectTypeColumn, c.Name, "", ActionCreate))
	}
	for _, p := range d.Changes {
		r.add(r.elementChange(ObjectTypeColumn, p.Target.Name, p.Source.Name, ActionAlter))
	}
	for _, c := range d.Deletions {
		r.add(r.elementChange(ObjectTypeColumn, c.Name, "", ActionDrop))
	}
	for range d.Unchanged {
		r.count(ObjectTypeColumn, "")
	}

	r.Summary.Total = r.Summary.Add + r.Summary.Change + r.Summary.Destroy
	return r, nil
}

func newReport(table string, source, target any) (*Report, error) {
	sourceFingerprint, err := fingerprint.Compute(source)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint source table: %w", err)
	}
	targetFingerprint, err := fingerprint.Compute(target)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint target table: %w", err)
	}

	return &Report{
		Version:           FormatVersion,
		SchemadiffVersion: version.Version(),
		Table:             table,
		SourceFingerprint: sourceFingerprint.Hash,
		TargetFingerprint: targetFingerprint.Hash,
		Identical:         fingerprint.Compare(sourceFingerprint, targetFingerprint) == nil,
		Summary: Summary{
			ByType: make(map[string]TypeSummary),
		},
		ObjectChanges: []ObjectChange{},
	}, nil
}

func (r *Report) elementChange(objType ObjectType, name, sourceName, action string) ObjectChange {
	return ObjectChange{
		Address:    r.Table + "." + name,
		Type:       string(objType),
		Name:       name,
		FormerName: formerName(sourceName, name),
		Action:     action,
	}
}

func (r *Report) add(change ObjectChange) {
	r.ObjectChanges = append(r.ObjectChanges, change)
	r.count(ObjectType(change.Type), change.Action)
}

// count records one element of objType; an empty action counts it as unchanged
func (r *Report) count(objType ObjectType, action string) {
	typeSummary := r.Summary.ByType[string(objType)]
	switch action {
	case ActionCreate:
		typeSummary.Add++
		r.Summary.Add++
	case ActionAlter:
		typeSummary.Change++
		r.Summary.Change++
	case ActionDrop:
		typeSummary.Destroy++
		r.Summary.Destroy++
	default:
		typeSummary.Unchanged++
		r.Summary.Unchanged++
	}
	r.Summary.ByType[string(objType)] = typeSummary
}

// HumanColored returns a human-readable summary of the report with color support
func (r *Report) HumanColored(enableColor bool) string {
	c := color.New(enableColor)
	var summary strings.Builder

	if r.Summary.Total == 0 {
		summary.WriteString("No changes detected.\n")
		return summary.String()
	}

	summary.WriteString(c.FormatPlanHeader(r.Summary.Add, r.Summary.Change, r.Summary.Destroy) + "\n\n")

	summary.WriteString(c.Bold("Summary by type:") + "\n")
	for _, objType := range getObjectOrder() {
		if typeSummary, exists := r.Summary.ByType[string(objType)]; exists && typeSummary.hasChanges() {
			summary.WriteString(c.FormatSummaryLine(string(objType), typeSummary.Add, typeSummary.Change, typeSummary.Destroy) + "\n")
		}
	}
	summary.WriteString("\n")

	for _, objType := range getObjectOrder() {
		if typeSummary, exists := r.Summary.ByType[string(objType)]; exists && typeSummary.hasChanges() {
			r.writeDetailedChanges(&summary, objType, c)
		}
	}

	fmt.Fprintf(&summary, "%s source %s, target %s\n", c.Cyan("Fingerprints:"), short(r.SourceFingerprint), short(r.TargetFingerprint))
	return summary.String()
}

func (r *Report) writeDetailedChanges(summary *strings.Builder, objType ObjectType, c *color.Color) {
	displayName := string(objType)
	displayName = strings.ToUpper(displayName[:1]) + displayName[1:]
	fmt.Fprintf(summary, "%s:\n", c.Bold(displayName))

	for _, change := range r.ObjectChanges {
		if change.Type != string(objType) {
			continue
		}
		line := c.FormatLine(change.Action, objType.singular(), change.Address)
		if change.FormerName != "" {
			line += fmt.Sprintf(" (renamed from %s)", change.FormerName)
		}
		if len(change.Attributes) > 0 {
			line += fmt.Sprintf(" [%s]", strings.Join(change.Attributes, ", "))
		}
		summary.WriteString(line + "\n")
	}

	summary.WriteString("\n")
}

// ToJSON returns the report as indented JSON
func (r *Report) ToJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	return string(data), nil
}

func (t TypeSummary) hasChanges() bool {
	return t.Add > 0 || t.Change > 0 || t.Destroy > 0
}

func tableAttributes(change diff.TableChange) []string {
	var attributes []string
	if change.Collation {
		attributes = append(attributes, "collation")
	}
	if change.Engine {
		attributes = append(attributes, "engine")
	}
	if change.Name {
		attributes = append(attributes, "name")
	}
	return attributes
}

func formerName(sourceName, name string) string {
	if sourceName == name {
		return ""
	}
	return sourceName
}

func nameOf(table, fallback *ir.Table) string {
	if table != nil {
		return table.Name
	}
	if fallback != nil {
		return fallback.Name
	}
	return ""
}

func short(hash string) string {
	return (&fingerprint.Fingerprint{Hash: hash}).Short()
}
