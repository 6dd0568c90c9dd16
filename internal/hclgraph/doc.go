// Package hclgraph loads graph documents written in HCL and translates them
// into a function catalog the compiler can consume.
//
// A document is one or more .hcl files containing `function` blocks. Each
// function declares its signature with `input`/`output` blocks, its locals
// with `variable` blocks, its nodes with `node` blocks, and its edges with
// `connect` blocks:
//
//	function "main" {
//	  main = true
//
//	  variable "greeting" {
//	    type    = string
//	    default = "hello"
//	  }
//
//	  node "start" { kind = "enter" }
//	  node "say" {
//	    kind = "print"
//	    input "text" { value = "hello world" }
//	  }
//
//	  connect {
//	    from = "start.exec"
//	    to   = "say.exec"
//	  }
//	}
//
// This is a command-line authoring surface, not the editor's own document
// encoding; the editor owns its persistence format elsewhere.
package hclgraph
