// Package launcher implements the viberun packaging shim: it resolves
// the host's prebuilt-binary target triple, locates the vendored viberun
// binary inside the installed package, and runs it as a child process
// while forwarding signals and mirroring the child's exit status.
//
// The package manager installs this shim in place of the real binary.
// A single invocation looks like:
//
//	l, err := launcher.New("/path/to/package/root")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := l.Run(context.Background(), os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(status.Code)
//
// # Vendored Layout
//
// The package root is expected to contain one directory per supported
// target triple:
//
//	<root>/vendor/<triple>/viberun/viberun[.exe]
//	<root>/vendor/<triple>/path/          (optional auxiliary tools)
//
// When the auxiliary tools directory exists it is prepended to the
// child's PATH. The child always receives VIBERUN_MANAGED_BY_PIP=1 so
// the wrapped binary can tell it was started under managed packaging.
//
// # Design Philosophy
//
// The shim must be transparent:
//
//   - No flags and no argument parsing; the argument vector is handed
//     to the child verbatim
//   - Silent on stdout/stderr unless debug logging is enabled
//   - The child's exit code (or fatal signal) becomes the shim's own
//     termination status
//   - Signal handlers exist only while the child is running
//
// Layout overrides, a wait-for-binary grace period, and a post-run
// launch report can be configured through an optional launcher.toml in
// the package root; the defaults reproduce the layout above exactly.
package launcher
