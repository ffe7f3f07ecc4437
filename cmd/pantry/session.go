// Session command runs the interactive service-day loop. The household queue
// only exists while a session runs, so sign-in, removal, and distribution
// live here rather than as one-shot commands.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/ledger"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive service session",
	Long: `Session opens the pantry for a service day: households sign in to a
waiting queue, receive distributions, and leave the queue. The queue is
discarded when the session ends; inventory and the logs persist.`,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	s := &session{ledger: l, in: bufio.NewReader(os.Stdin), out: os.Stdout}
	return s.run()
}

// session drives the interactive menu over one open ledger.
type session struct {
	ledger *ledger.Ledger
	in     *bufio.Reader
	out    io.Writer
}

func (s *session) run() error {
	for {
		status := s.ledger.Status()
		fmt.Fprintf(s.out, "\n=== Pantry Session: %d waiting, %d items in stock ===\n",
			status.HouseholdsWaiting, status.UniqueItems)
		fmt.Fprintln(s.out, " 1) Sign in household")
		fmt.Fprintln(s.out, " 2) Remove household from queue")
		fmt.Fprintln(s.out, " 3) Show queue")
		fmt.Fprintln(s.out, " 4) Record distribution")
		fmt.Fprintln(s.out, " 5) Record food donation")
		fmt.Fprintln(s.out, " 6) Record money donation")
		fmt.Fprintln(s.out, " 7) Show inventory")
		fmt.Fprintln(s.out, " 8) Show analytics")
		fmt.Fprintln(s.out, " 0) End session")

		choice, err := s.prompt("Choice")
		if errors.Is(err, io.EOF) || choice == "0" {
			fmt.Fprintln(s.out, "Session ended.")
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.dispatch(choice); err != nil {
			// Engine errors are user-correctable; report and keep serving.
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *session) dispatch(choice string) error {
	switch choice {
	case "1":
		return s.signIn()
	case "2":
		return s.removeHousehold()
	case "3":
		s.showQueue()
		return nil
	case "4":
		return s.distribute()
	case "5":
		return s.donateFood()
	case "6":
		return s.donateMoney()
	case "7":
		s.showInventory()
		return nil
	case "8":
		s.showAnalytics()
		return nil
	default:
		return fmt.Errorf("unknown choice %q", choice)
	}
}

func (s *session) signIn() error {
	name, err := s.prompt("Household name")
	if err != nil {
		return err
	}
	size, err := s.promptInt("Household size")
	if err != nil {
		return err
	}

	h, err := s.ledger.SignInHousehold(name, size)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Signed in %s (size %d) as #%d\n", h.Name, h.Size, h.ID)
	return nil
}

func (s *session) removeHousehold() error {
	id, err := s.promptInt("Household ID")
	if err != nil {
		return err
	}
	if err := s.ledger.RemoveHousehold(id); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Removed household #%d from the queue\n", id)
	return nil
}

func (s *session) showQueue() {
	queue := s.ledger.Queue()
	if len(queue) == 0 {
		fmt.Fprintln(s.out, "The queue is empty.")
		return
	}
	for _, h := range queue {
		fmt.Fprintf(s.out, "  #%-4d %-30s size %d\n", h.ID, h.Name, h.Size)
	}
}

// distribute collects item lines until a blank entry, then records the
// distribution as one atomic request.
func (s *session) distribute() error {
	id, err := s.promptInt("Household ID")
	if err != nil {
		return err
	}

	var items []ledger.DistributionItemInput
	for {
		name, err := s.prompt("Item name (blank to finish)")
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		quantity, err := s.promptInt("Quantity")
		if err != nil {
			return err
		}
		items = append(items, ledger.DistributionItemInput{Name: name, Quantity: quantity})
	}

	record, err := s.ledger.RecordDistribution(id, items)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Distributed %d item line(s) to %s\n", len(record.Items), record.HouseholdName)
	return nil
}

func (s *session) donateFood() error {
	donor, err := s.prompt("Donor name")
	if err != nil {
		return err
	}

	var items []ledger.FoodItemInput
	for {
		name, err := s.prompt("Item name (blank to finish)")
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		quantity, err := s.promptInt("Quantity")
		if err != nil {
			return err
		}
		date, err := s.prompt("Expiration date (YYYY-MM-DD)")
		if err != nil {
			return err
		}
		items = append(items, ledger.FoodItemInput{Name: name, Quantity: quantity, ExpirationDate: date})
	}

	donation, err := s.ledger.AddFoodDonation(donor, items)
	if err != nil {
		return err
	}
	details := donation.Details.(types.FoodDetails)
	fmt.Fprintf(s.out, "Recorded food donation from %s: %d item(s)\n", donation.Donor, len(details))
	return nil
}

func (s *session) donateMoney() error {
	donor, err := s.prompt("Donor name")
	if err != nil {
		return err
	}
	raw, err := s.prompt("Amount")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", types.ErrValidation, raw)
	}

	donation, err := s.ledger.AddMoneyDonation(donor, amount)
	if err != nil {
		return err
	}
	money := donation.Details.(types.MoneyDetails)
	fmt.Fprintf(s.out, "Recorded money donation from %s: $%s\n", donation.Donor, money.Amount().StringFixed(2))
	return nil
}

func (s *session) showInventory() {
	items := s.ledger.VisibleInventory()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items in stock.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(s.out, "  %-30s %6d  expires %s\n", item.Name, item.Quantity, item.ExpirationDate)
	}
}

func (s *session) showAnalytics() {
	rows := s.ledger.Analytics()
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "No distributions recorded.")
		return
	}
	for _, row := range rows {
		fmt.Fprintf(s.out, "  %-30s %d distributed\n", row.Name, row.Total)
	}
}

// prompt reads one trimmed line of input.
func (s *session) prompt(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt reads one integer.
func (s *session) promptInt(label string) (int, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", types.ErrValidation, raw)
	}
	return n, nil
}
