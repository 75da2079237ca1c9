// Package roster loads batches of student drafts from roster files.
//
// Two formats are accepted, chosen by file extension:
//
//	.yaml, .yml  decoded with gopkg.in/yaml.v3 (unknown fields rejected)
//	.cue         evaluated with cuelang.org/go
//
// Both are checked against the embedded CUE schema (schema.cue) before any
// entry is returned, so a roster with a blank name, gender or state never
// reaches the store. Flags may be written as booleans or as 0/1.
//
// Example roster:
//
//	students:
//	  - name: Ada Obi
//	    gender: female
//	    state: osun
//	    well_dressed: true
//	    well_behaved: 1
package roster
