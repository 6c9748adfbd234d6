// Package menu implements the interactive text menu over the recipe
// store. The loop is strictly synchronous: read a selection, run one
// store operation, print the result, repeat. All I/O goes through the
// injected reader and writer so sessions can be scripted in tests.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// Store is the storage surface the menu drives.
type Store interface {
	Create(r *types.Recipe) (int64, error)
	Get(id int64) (*types.Recipe, error)
	List() ([]*types.Recipe, error)
	Update(id int64, r *types.Recipe) error
	Delete(id int64) error
}

// Menu runs the interactive session.
type Menu struct {
	store Store
	in    *bufio.Scanner
	out   io.Writer
}

// New creates a Menu reading selections from in and writing to out.
func New(store Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops until the user quits or input ends. Storage errors are
// reported and the loop resumes; nothing escapes the loop as a panic
// or process exit.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			return nil
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}
		cmd := fields[0]
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case "list":
			m.runList()
		case "view":
			m.runView(arg)
		case "add":
			m.runAdd()
		case "update":
			m.runUpdate(arg)
		case "delete":
			m.runDelete(arg)
		case "quit", "exit":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintf(m.out, "Unknown selection %q.\n", cmd)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "---------- Cook Book ----------")
	fmt.Fprintln(m.out, "  list            show all recipes")
	fmt.Fprintln(m.out, "  view <id>       show one recipe")
	fmt.Fprintln(m.out, "  add             add a new recipe")
	fmt.Fprintln(m.out, "  update <id>     update a recipe")
	fmt.Fprintln(m.out, "  delete <id>     delete a recipe")
	fmt.Fprintln(m.out, "  quit            exit")
	fmt.Fprint(m.out, "Choose an option: ")
}

// readLine reads one input line. ok is false when input is exhausted.
func (m *Menu) readLine() (line string, ok bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// prompt prints a prompt and reads one line.
func (m *Menu) prompt(p string) (string, bool) {
	fmt.Fprint(m.out, p)
	return m.readLine()
}

// promptNonEmpty re-prompts until the user enters a non-empty value.
// ok is false only when input is exhausted.
func (m *Menu) promptNonEmpty(p string) (string, bool) {
	for {
		line, ok := m.prompt(p)
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
		fmt.Fprintln(m.out, "A value is required.")
	}
}

// resolveID returns the recipe id for a selection, taking it from the
// inline argument when given and prompting otherwise. "back" at the
// prompt aborts. ok is false when the user backed out or input ended.
func (m *Menu) resolveID(arg, action string) (int64, bool) {
	if arg != "" {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id < 1 {
			fmt.Fprintf(m.out, "%q is not a valid recipe number.\n", arg)
			return 0, false
		}
		return id, true
	}
	for {
		line, ok := m.prompt(fmt.Sprintf("Enter recipe number to %s (or 'back'): ", action))
		if !ok {
			return 0, false
		}
		if strings.EqualFold(line, "back") {
			return 0, false
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil || id < 1 {
			fmt.Fprintln(m.out, "Please enter a valid number or 'back'.")
			continue
		}
		return id, true
	}
}

// collectList is the single shared multi-line collector used for both
// ingredients and steps: one item per line, empty line finishes.
func (m *Menu) collectList(label string) ([]string, bool) {
	fmt.Fprintf(m.out, "Enter %s (one per line, empty line to finish):\n", label)
	var items []string
	for {
		line, ok := m.prompt(fmt.Sprintf("%s %d: ", label, len(items)+1))
		if !ok {
			return items, false
		}
		if line == "" {
			return items, true
		}
		items = append(items, line)
	}
}

// collectListNonEmpty re-runs collectList until at least one item is
// entered.
func (m *Menu) collectListNonEmpty(label string) ([]string, bool) {
	for {
		items, ok := m.collectList(label)
		if !ok {
			return nil, false
		}
		if len(items) > 0 {
			return items, true
		}
		fmt.Fprintf(m.out, "At least one %s is required.\n", label)
	}
}

// confirm asks a y/n question; only "y" or "yes" counts as yes.
func (m *Menu) confirm(question string) bool {
	line, ok := m.prompt(question + " (y/n): ")
	if !ok {
		return false
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes"
}

// reportError prints a user-facing message for a store error. Not-found
// gets the friendly form; anything else is surfaced verbatim and the
// loop resumes.
func (m *Menu) reportError(err error) {
	if errors.Is(err, types.ErrNotFound) {
		fmt.Fprintln(m.out, "Recipe not found.")
		return
	}
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func (m *Menu) runList() {
	recipes, err := m.store.List()
	if err != nil {
		m.reportError(err)
		return
	}
	if len(recipes) == 0 {
		fmt.Fprintln(m.out, "No recipes found.")
		return
	}

	fmt.Fprintln(m.out, "---------- Stored Recipes ----------")
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.RecipeID, r.Name, r.Description)
	}
	w.Flush()
}

func (m *Menu) runView(arg string) {
	id, ok := m.resolveID(arg, "view")
	if !ok {
		return
	}
	recipe, err := m.store.Get(id)
	if err != nil {
		m.reportError(err)
		return
	}
	m.printRecipe(recipe)
}

func (m *Menu) runAdd() {
	fmt.Fprintln(m.out, "---------- Add New Recipe ----------")
	name, ok := m.promptNonEmpty("Enter recipe name: ")
	if !ok {
		return
	}
	description, ok := m.promptNonEmpty("Enter recipe description: ")
	if !ok {
		return
	}
	ingredients, ok := m.collectListNonEmpty("ingredient")
	if !ok {
		return
	}
	steps, ok := m.collectListNonEmpty("step")
	if !ok {
		return
	}

	recipe := &types.Recipe{
		Name:        name,
		Description: description,
		Ingredients: ingredients,
		Steps:       steps,
	}
	id, err := m.store.Create(recipe)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Recipe created with ID: %d\n", id)
}

func (m *Menu) runUpdate(arg string) {
	id, ok := m.resolveID(arg, "update")
	if !ok {
		return
	}
	current, err := m.store.Get(id)
	if err != nil {
		m.reportError(err)
		return
	}

	fmt.Fprintln(m.out, "Enter new details (press enter to keep current values):")
	name, ok := m.prompt(fmt.Sprintf("Enter new name [%s]: ", current.Name))
	if !ok {
		return
	}
	if name == "" {
		name = current.Name
	}
	description, ok := m.prompt(fmt.Sprintf("Enter new description [%s]: ", current.Description))
	if !ok {
		return
	}
	if description == "" {
		description = current.Description
	}

	ingredients := current.Ingredients
	if m.confirm("Update ingredients?") {
		ingredients, ok = m.collectListNonEmpty("ingredient")
		if !ok {
			return
		}
	}
	steps := current.Steps
	if m.confirm("Update steps?") {
		steps, ok = m.collectListNonEmpty("step")
		if !ok {
			return
		}
	}

	updated := &types.Recipe{
		Name:        name,
		Description: description,
		Ingredients: ingredients,
		Steps:       steps,
	}
	if err := m.store.Update(id, updated); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Recipe updated successfully!")
}

func (m *Menu) runDelete(arg string) {
	id, ok := m.resolveID(arg, "delete")
	if !ok {
		return
	}
	recipe, err := m.store.Get(id)
	if err != nil {
		m.reportError(err)
		return
	}

	if !m.confirm(fmt.Sprintf("Are you sure you want to delete %q?", recipe.Name)) {
		return
	}
	if err := m.store.Delete(id); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Recipe deleted successfully!")
}

// printRecipe writes the full multi-line recipe view.
func (m *Menu) printRecipe(r *types.Recipe) {
	fmt.Fprintln(m.out, "---------- Recipe Details ----------")
	fmt.Fprintf(m.out, "Recipe ID: %d\n", r.RecipeID)
	fmt.Fprintf(m.out, "Name: %s\n", r.Name)
	fmt.Fprintf(m.out, "Description: %s\n", r.Description)
	if !r.DateCreated.IsZero() {
		fmt.Fprintf(m.out, "Created: %s\n", r.DateCreated.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(m.out, "\nIngredients:")
	for _, ingredient := range r.Ingredients {
		fmt.Fprintf(m.out, "- %s\n", ingredient)
	}
	fmt.Fprintln(m.out, "\nSteps:")
	for i, step := range r.Steps {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, step)
	}
}
