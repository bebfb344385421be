// Package dotnet provides a typed view of the local .NET installation.
//
// This package wraps the dotnet CLI: every call spawns one `dotnet`
// process, waits for it, and parses its text output into records. Nothing
// is cached, so two calls observe the machine as it is at that moment.
//
//	client, err := dotnet.NewClient(nil)
//	if err != nil {
//		return err
//	}
//	sdks, err := client.ListSDKs(ctx)
//	if dotnet.IsCommandFailed(err) {
//		// the CLI ran and exited non-zero
//	}
package dotnet
