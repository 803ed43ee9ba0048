/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Paintersrp/home/internal/config"
	"github.com/Paintersrp/home/internal/state"
	"github.com/Paintersrp/home/pkg/cmd/root"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := &state.Loader{}
	rootCmd := root.NewCmdRoot(loader)

	execErr := rootCmd.ExecuteContext(ctx)
	if closeErr := loader.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "failed to save settings: %v\n", closeErr)
	}

	if execErr != nil {
		var initErr *config.ConfigInitError
		if errors.As(execErr, &initErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
