package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/streamsvc/userd/internal/client"
	"github.com/streamsvc/userd/proto/userv1"
)

// rpcTimeout bounds the unary client calls. Streams run until the server
// finishes or the command's context is canceled.
const rpcTimeout = 10 * time.Second

var (
	clientAddr    string
	createName    string
	createSurname string
	getUserID     int32
	getUserName   string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Interact with a running user service",
}

var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createName == "" || createSurname == "" {
			return errors.New("both --name and --surname must be set")
		}

		c, err := client.New(clientAddr)
		if err != nil {
			return err
		}
		defer closeClient(c)

		ctx, cancel := context.WithTimeout(cmd.Context(), rpcTimeout)
		defer cancel()

		user, err := c.CreateUser(ctx, createName, createSurname)
		if err != nil {
			return err
		}
		printUser(user)
		return nil
	},
}

var getUserCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a user by ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(clientAddr)
		if err != nil {
			return err
		}
		defer closeClient(c)

		ctx, cancel := context.WithTimeout(cmd.Context(), rpcTimeout)
		defer cancel()

		user, err := c.GetUserByID(ctx, getUserID)
		if err != nil {
			return err
		}
		printUser(user)
		return nil
	},
}

var getUserByNameCmd = &cobra.Command{
	Use:   "get-by-name",
	Short: "Fetch the first user with the given name",
	RunE: func(cmd *cobra.Command, args []string) error {
		if getUserName == "" {
			return errors.New("--name must be set")
		}

		c, err := client.New(clientAddr)
		if err != nil {
			return err
		}
		defer closeClient(c)

		ctx, cancel := context.WithTimeout(cmd.Context(), rpcTimeout)
		defer cancel()

		user, err := c.GetUserByName(ctx, getUserName)
		if err != nil {
			return err
		}
		printUser(user)
		return nil
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch all users in a single response",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(clientAddr)
		if err != nil {
			return err
		}
		defer closeClient(c)

		ctx, cancel := context.WithTimeout(cmd.Context(), rpcTimeout)
		defer cancel()

		users, err := c.GetUsers(ctx)
		if err != nil {
			return err
		}
		for _, user := range users {
			printUser(user)
		}
		fmt.Printf("%d user(s)\n", len(users))
		return nil
	},
}

var streamUsersCmd = &cobra.Command{
	Use:   "stream",
	Short: "Stream all users one at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(clientAddr)
		if err != nil {
			return err
		}
		defer closeClient(c)

		count := 0
		err = c.StreamUsers(cmd.Context(), func(user *userv1.User) error {
			printUser(user)
			count++
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("%d user(s)\n", count)
		return nil
	},
}

func init() {
	clientCmd.PersistentFlags().StringVar(&clientAddr, "addr", "localhost:50051", "address of the user service")

	createUserCmd.Flags().StringVar(&createName, "name", "", "first name of the user")
	createUserCmd.Flags().StringVar(&createSurname, "surname", "", "surname of the user")
	getUserCmd.Flags().Int32Var(&getUserID, "id", 0, "ID of the user")
	getUserByNameCmd.Flags().StringVar(&getUserName, "name", "", "name of the user")

	clientCmd.AddCommand(createUserCmd, getUserCmd, getUserByNameCmd, listUsersCmd, streamUsersCmd)
	rootCmd.AddCommand(clientCmd)
}

func printUser(u *userv1.User) {
	fmt.Printf("%d\t%s %s\n", u.GetId(), u.GetName(), u.GetSurname())
}

func closeClient(c *client.Client) {
	if err := c.Close(); err != nil {
		fmt.Printf("warning: failed to close client connection: %v\n", err)
	}
}
