package adaptor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cinema-client/internal/usecase"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

// Console is the terminal front end over the booking services: the guest
// seat-picking flow and the admin menu.
type Console struct {
	Guest *GuestFlow
	Admin *AdminMenu

	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger
}

func NewConsole(service *usecase.Service, config *utils.Config, log *zap.Logger) *Console {
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	c := &Console{
		in:  in,
		out: out,
		log: log.With(
			zap.String("handler", "console"),
			zap.String("session", utils.GenerateGuestToken()),
		),
	}
	c.Guest = NewGuestFlow(c, service, config)
	c.Admin = NewAdminMenu(c, service)

	return c
}

// Run drives the top-level menu until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printf("\n=== Cinema booking ===\n")
		c.printf("[1] Films and seances\n")
		c.printf("[2] Pick seats and book\n")
		c.printf("[3] Administration\n")
		c.printf("[0] Quit\n")

		choice, ok := c.readLine("> ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.Guest.ShowProgram(ctx)
		case "2":
			c.Guest.BookSeats(ctx)
		case "3":
			c.Admin.Run(ctx)
		case "0", "q":
			return nil
		default:
			c.printf("Unknown choice\n")
		}
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) readLine(prompt string) (string, bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		if line == "" {
			return 0, false
		}
		value := utils.ParseInt(line, 0)
		if value == 0 {
			c.printf("Enter a positive number\n")
			continue
		}
		return value, true
	}
}

func (c *Console) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok || line == "" {
			return 0, false
		}
		value := utils.ParseFloat(line, -1)
		if value < 0 {
			c.printf("Enter a non-negative number\n")
			continue
		}
		return value, true
	}
}
