// Package lua runs user scripts that post-process exported dictionaries.
//
// A script is loaded into a sandboxed gopher-lua state: only the base,
// table, string and math libraries are opened, and dofile, loadfile, load
// and require are removed. Calls into the script run under a timeout and
// can be cancelled through a context.
//
// # Translate Hook
//
// A Translator wraps a script defining a global function
//
//	function translate(stroke, text, kind)
//	  if kind == "chunk" and #text < 2 then
//	    return nil -- drop the entry
//	  end
//	  return text
//	end
//
// called once per dictionary entry. A string result replaces the entry
// text, nil drops the entry, and a missing function leaves entries as they
// are.
package lua
