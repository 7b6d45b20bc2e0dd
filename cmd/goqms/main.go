// Command goqms reduces QMS traces from astrophysical ice experiments to
// per-channel integrated areas.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
