// oaps-proof canonicalizes JSON proof documents and prints their Keccak-256 proof hash.
package main

import "github.com/information-sharing-networks/oaps-proof/internal/cli"

func main() {
	cli.Execute()
}
