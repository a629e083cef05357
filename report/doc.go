// Package report turns a Network into a Summary and renders it.
//
// A Summary has two parts. The person-to-group part always describes the
// whole network. The person-to-person part describes the whole network when
// it is connected, and the largest component otherwise; Scope tells which.
//
// WriteText produces the fixed-width console layout:
//
//	Person-to-Group Data:
//	----------------------------------------
//	Persons:                              5
//	Proportion of persons:          1.00000
//	...
//
// WriteYAML emits the same Summary as a YAML document.
package report
