package main

import (
	"fmt"
	"os"

	"meetsync/config"
	"meetsync/database"
	userRepoPkg "meetsync/database/repository/user"
	"meetsync/services/user"

	"github.com/spf13/cobra"
)

func newUserService() user.UserService {
	config.LoadConfig()
	database.InitDB()
	return user.NewDefaultUserService(userRepoPkg.NewMongoUserRepo())
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Manage administrator accounts",
		Long:  "adminctl promotes users to super admin and lists current super admins.",
	}

	promoteCmd := &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant super admin to the user with the given email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newUserService()
			updated, err := svc.PromoteByEmail(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Promoted %s (%s) to super admin\n", updated.Name, updated.Email)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List current super admins",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newUserService()
			supers, err := svc.ListSuperAdmins()
			if err != nil {
				return err
			}
			if len(supers) == 0 {
				fmt.Println("No super admins configured")
				return nil
			}
			for _, p := range supers {
				fmt.Printf("%s\t%s\t%s\n", p.ID, p.Name, p.Email)
			}
			return nil
		},
	}

	rootCmd.AddCommand(promoteCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
