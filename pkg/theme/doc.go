// Package theme loads YAML theme sheets and resolves them through the
// tcss cascade.
//
// A sheet names a theme and maps selectors to property declarations:
//
//	name: dark
//	extends: base
//	styles:
//	  button:
//	    color: bright-white
//	    background: "#303030"
//	    border: rounded cyan
//	    padding: 0 1
//	  button.primary:
//	    apply: bold underline
//	    background: blue
//
// Values use the same syntax as tcss.Declare. The "apply" key takes
// utility classes, which explicit declarations in the same block override. Hex colors must be quoted,
// since an unquoted # starts a YAML comment.
package theme
