// Command hash-admin-password produces the Argon2id hash that belongs in
// YBT_ADMIN_PASSWORD_HASH. The plaintext never goes anywhere else.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yourbrand/tours-backend/pkg/config"
	"github.com/yourbrand/tours-backend/pkg/security"
)

func main() {
	memoryKB := flag.Int("memory-kb", 65536, "argon2id memory cost in KiB")
	timeCost := flag.Int("time", 3, "argon2id time cost")
	parallelism := flag.Int("parallelism", 2, "argon2id lanes")
	flag.Parse()

	password := flag.Arg(0)
	if password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "read password: %v\n", err)
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "empty password")
		os.Exit(1)
	}

	cfg := config.AdminConfig{
		ArgonMemoryKB:    *memoryKB,
		ArgonTime:        *timeCost,
		ArgonParallelism: *parallelism,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}

	hash, err := security.HashPassword(password, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
