package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/microservices-manager/admin-console/internal/application"
	"github.com/microservices-manager/admin-console/internal/domain"
)

type view int

const (
	viewUsers view = iota
	viewOrders
)

// console is the navigation collaborator: it refreshes collections on view
// entry, renders their state and forwards operator actions to the form units
// and collection controllers. No invariants live here.
type console struct {
	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger

	users  *application.UserCollection
	orders *application.OrderCollection

	userForm  *application.UserForm
	orderForm *application.OrderForm
}

func (c *console) run(ctx context.Context) {
	current := viewUsers
	c.enterUsersView(ctx)

	for {
		if current == viewUsers {
			fmt.Fprint(c.out, "users> ")
		} else {
			fmt.Fprint(c.out, "orders> ")
		}
		if !c.in.Scan() {
			return
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			c.printHelp()
		case "users":
			current = viewUsers
			c.enterUsersView(ctx)
		case "orders":
			current = viewOrders
			c.enterOrdersView(ctx)
		default:
			if current == viewUsers {
				c.usersCommand(ctx, cmd, args)
			} else {
				c.ordersCommand(ctx, cmd, args)
			}
		}
	}
}

func (c *console) printHelp() {
	fmt.Fprintln(c.out, `commands:
  users | orders        switch view (refreshes on entry)
  list                  refresh and show the current collection
  add                   open a create form
  edit <id>             open an edit form for a record
  set <field> <value>   change one form field
  show                  show the open form draft
  submit                validate and save the form
  cancel                discard the form
  del <id>              delete a record (asks for confirmation)
  quit`)
}

func (c *console) enterUsersView(ctx context.Context) {
	_ = c.users.Refresh(ctx)
	c.renderUsers()
}

// enterOrdersView fetches both collections concurrently. A failing user fetch
// only degrades the customer column to fallback labels, so it is logged
// rather than surfaced.
func (c *console) enterOrdersView(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = c.orders.Refresh(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := c.users.Refresh(ctx); err != nil {
			c.log.Warn("failed to fetch users for order view", zap.Error(err))
		}
	}()
	wg.Wait()
	c.renderOrders()
}

func (c *console) renderUsers() {
	if c.users.IsLoading() {
		fmt.Fprintln(c.out, "loading...")
		return
	}
	if msg := c.users.LastError(); msg != "" {
		fmt.Fprintf(c.out, "error: %s\n", msg)
	}
	items := c.users.Items()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "No users found. Type 'add' to create one.")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for _, u := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Phone)
	}
	w.Flush()
}

func (c *console) renderOrders() {
	if c.orders.IsLoading() {
		fmt.Fprintln(c.out, "loading...")
		return
	}
	if msg := c.orders.LastError(); msg != "" {
		fmt.Fprintf(c.out, "error: %s\n", msg)
	}
	rows := application.BuildOrderRows(c.users.Items(), c.orders.Items())
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "No orders found. Type 'add' to create one.")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tPRODUCT\tQTY\tPRICE\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			r.Order.ID, r.UserName, r.Order.ProductName, r.Order.Quantity, r.Order.PriceLabel(), r.Order.Status)
	}
	w.Flush()
}

func (c *console) usersCommand(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "list":
		c.enterUsersView(ctx)
	case "add":
		c.userForm.OpenForCreate()
		fmt.Fprintln(c.out, "creating user; set name/email/phone, then 'submit'")
	case "edit":
		id, ok := parseIDArg(c.out, args)
		if !ok {
			return
		}
		for _, u := range c.users.Items() {
			if u.ID == id {
				c.userForm.OpenForEdit(u)
				fmt.Fprintf(c.out, "editing user %d; 'show' to inspect, 'submit' to save\n", id)
				return
			}
		}
		fmt.Fprintf(c.out, "no user with id %d in the current list\n", id)
	case "set":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "usage: set <field> <value>")
			return
		}
		if err := c.userForm.SetField(args[0], strings.Join(args[1:], " ")); err != nil {
			fmt.Fprintln(c.out, err)
		}
	case "show":
		d := c.userForm.Draft()
		fmt.Fprintf(c.out, "[%s] name=%q email=%q phone=%q\n", c.userForm.Mode(), d.Name, d.Email, d.Phone)
	case "submit":
		if err := c.userForm.Submit(ctx); err != nil {
			fmt.Fprintf(c.out, "error: %s\n", errText(err, c.users.LastError()))
			return
		}
		c.renderUsers()
	case "cancel":
		c.userForm.Cancel()
	case "del":
		id, ok := parseIDArg(c.out, args)
		if !ok {
			return
		}
		if err := c.users.DeleteRecord(ctx, id); err != nil {
			fmt.Fprintf(c.out, "error: %s\n", c.users.LastError())
			return
		}
		c.renderUsers()
	default:
		fmt.Fprintf(c.out, "unknown command %q, try 'help'\n", cmd)
	}
}

func (c *console) ordersCommand(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "list":
		c.enterOrdersView(ctx)
	case "add":
		c.orderForm.OpenForCreate()
		fmt.Fprintln(c.out, "creating order; pick a customer:")
		for _, opt := range application.CustomerOptions(c.users.Items()) {
			fmt.Fprintf(c.out, "  %d: %s\n", opt.ID, opt.Label)
		}
		fmt.Fprintf(c.out, "statuses: %v\n", domain.OrderStatuses())
	case "edit":
		id, ok := parseIDArg(c.out, args)
		if !ok {
			return
		}
		for _, o := range c.orders.Items() {
			if o.ID == id {
				c.orderForm.OpenForEdit(o)
				fmt.Fprintf(c.out, "editing order %d; 'show' to inspect, 'submit' to save\n", id)
				return
			}
		}
		fmt.Fprintf(c.out, "no order with id %d in the current list\n", id)
	case "set":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "usage: set <field> <value>")
			return
		}
		if err := c.orderForm.SetField(args[0], strings.Join(args[1:], " ")); err != nil {
			fmt.Fprintln(c.out, err)
		}
	case "show":
		d := c.orderForm.Draft()
		fmt.Fprintf(c.out, "[%s] userId=%q productName=%q quantity=%q price=%q status=%q\n",
			c.orderForm.Mode(), d.UserID, d.ProductName, d.Quantity, d.Price, d.Status)
	case "submit":
		if err := c.orderForm.Submit(ctx); err != nil {
			fmt.Fprintf(c.out, "error: %s\n", errText(err, c.orders.LastError()))
			return
		}
		c.renderOrders()
	case "cancel":
		c.orderForm.Cancel()
	case "del":
		id, ok := parseIDArg(c.out, args)
		if !ok {
			return
		}
		if err := c.orders.DeleteRecord(ctx, id); err != nil {
			fmt.Fprintf(c.out, "error: %s\n", c.orders.LastError())
			return
		}
		c.renderOrders()
	default:
		fmt.Fprintf(c.out, "unknown command %q, try 'help'\n", cmd)
	}
}

func parseIDArg(out io.Writer, args []string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: <command> <id>")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}

// errText picks what to show for a failed submit. Draft problems never reach
// the controller and print as-is; anything older in lastError would be stale.
// For transport failures the controller's surfaced message wins.
func errText(err error, lastError string) string {
	var vErr *application.ValidationError
	if errors.As(err, &vErr) || lastError == "" {
		return err.Error()
	}
	return lastError
}
