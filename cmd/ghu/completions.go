package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/ghu/internal/filter"
)

// completionTimeout bounds the API call made while completing a login
const completionTimeout = 3 * time.Second

// completeCategories provides repository category completion.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, c := range filter.Categories() {
		name := strings.ToLower(c.String())
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeLogins completes the login argument from the user list.
func completeLogins(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	client, err := newClient(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	users, err := client.ListUsers(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, u := range users {
		if strings.HasPrefix(strings.ToLower(u.Login), strings.ToLower(toComplete)) {
			matches = append(matches, u.Login)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
