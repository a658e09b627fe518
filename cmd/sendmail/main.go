// Command sendmail sends one order email from the command line.
//
// Usage:
//
//	sendmail -template orderConfirmation [-email override@example.com] <order-id>
//
// The optional -email flag redirects the email without changing the customer
// address stored on the order. Exits with status 1 on any failure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"ordermail/cmd"
	"ordermail/internal/core/application/usecases/commands"
	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/pkg/errs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	template := flag.String("template", "", "email template to send")
	email := flag.String("email", "", "override recipient address (optional)")
	flag.Parse()

	if *template == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sendmail -template <name> [-email <address>] <order-id>")
		os.Exit(1)
	}

	orderID, err := kernel.UUIDFromString(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid order id: %v\n", err)
		os.Exit(1)
	}

	sendCommand, err := commands.NewSendOrderEmailCommand(orderID, commands.EmailTemplate(*template), *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid command: %v\n", err)
		os.Exit(1)
	}

	configs := cmd.LoadFromEnv()
	gormDB, err := openDB(configs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	handler := app.CreateSendOrderEmailCommandHandler()

	if err = handler.Handle(context.Background(), sendCommand); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			fmt.Fprintln(os.Stderr, "order was not found")
		} else {
			fmt.Fprintf(os.Stderr, "failed to send email: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("email %q sent for order %s\n", *template, orderID.String())
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}
