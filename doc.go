// Package pyprints drives the bundled python-prints executable to list
// printers, change the OS default printer and print PDF files.
//
// All printer work happens inside the executable. This package locates the
// right build for the host platform, runs it with the bundle directory as
// its working directory, and maps its output and exit code onto Go values
// and errors:
//
//	client, err := pyprints.New(pyprints.WithRoot("/opt/myapp"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	printers, err := client.List(ctx)
//	fmt.Println(printers.Names, printers.Default)
//
//	res, err := client.PrintPDF(ctx, "/tmp/invoice.pdf", pyprints.PrintOptions{
//	    Printer: printers.Preferred(),
//	    Copies:  2,
//	})
//
// # Bundle Layout
//
// The executable is expected at <root>/bin/<subdir>/python-prints/<file>.
// DefaultLayout only knows the Windows build (win/python-prints.exe), which
// is what the shipped bundle contains. FullLayout adds mac/ and linux/
// entries; any other table can be supplied with WithLayout. Platforms
// missing from the layout fail with ErrUnsupportedPlatform before anything
// is spawned.
//
// # Errors
//
// Input problems are reported before a process starts, as ErrInvalidArgument
// or ErrFileNotFound. A process that cannot start yields ErrSpawn. A process
// that exits non-zero yields a *ToolError whose message is the tool's
// stderr, its stdout, or "exit N", in that order of preference.
//
// # Path Checks
//
// By default PrintPDF requires an absolute path to an existing file.
// WithStrictPaths(false) drops the existence check and resolves relative
// paths against the caller's working directory instead.
//
// # Batches and Hot Folders
//
// Manager prints many files with bounded concurrency, and
// Client.WatchFolder prints PDFs as they are dropped into a directory.
// Client.PrintReader prints a document held in memory or streamed from
// elsewhere by staging it in a spool directory.
package pyprints
