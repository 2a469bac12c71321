package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/pkg/scope"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token signed with the configured secret",
	RunE:  runToken,
}

func runToken(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}

	jm, err := scope.New(e.cfg.JWT.Secret, e.cfg.JWT.TTL, nil)
	if err != nil {
		return err
	}
	token, err := jm.CreateToken(scope.DefaultSubject)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
