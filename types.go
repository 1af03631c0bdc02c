package schemadiff

import (
	"github.com/pgschema/schemadiff/diff"
	"github.com/pgschema/schemadiff/internal/report"
	"github.com/pgschema/schemadiff/ir"
)

// Re-export important types for external consumption

// TableDiff is the difference between two tables of the full model.
type TableDiff = diff.TableDiff

// TableSchemaDiff is the difference between two tables of the reduced model.
type TableSchemaDiff = diff.TableSchemaDiff

// Report summarizes a diff for display or tooling.
type Report = report.Report

// ObjectChange is one entry of a Report.
type ObjectChange = report.ObjectChange

// Table represents a database table with its columns and indexes.
type Table = ir.Table

// Column represents a table column.
type Column = ir.Column

// Type describes the data type of a column.
type Type = ir.Type

// Index represents a table index.
type Index = ir.Index

// IndexKey represents a column within an index.
type IndexKey = ir.IndexKey

// Literal is a column default given by its string form.
type Literal = ir.Literal
