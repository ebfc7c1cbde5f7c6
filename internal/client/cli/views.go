package cli

import (
	"context"
	"fmt"
)

// RunRecent prints the reconciled last items, pending ones marked.
func (c *Cli) RunRecent(ctx context.Context, limit int) error {
	items, err := c.views.LastItems(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to load recent items: %w", err)
	}

	if len(items) == 0 {
		c.io.Println("No items yet.")
		return nil
	}

	tw := c.table()
	fmt.Fprintln(tw, "DATE\tCOMANDA\tTIPO\tMATERIAL\tKG\tR$/KG\tTOTAL\tSTATE")
	for _, it := range items {
		state := "synced"
		if it.Pending {
			state = "pending"
		}
		comanda := it.Codigo
		if comanda == "" && it.Comanda != 0 {
			comanda = fmt.Sprint(it.Comanda)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			formatTime(&it.Data),
			dash(comanda),
			dash(it.Tipo),
			it.MaterialNome,
			it.KgTotal.StringFixed(3),
			it.PrecoKg.StringFixed(2),
			it.ValorTotal.StringFixed(2),
			state,
		)
	}
	return tw.Flush()
}

// RunPendencias prints open debts, pending ones marked.
func (c *Cli) RunPendencias(ctx context.Context) error {
	views, err := c.views.Pendencias(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pendencias: %w", err)
	}

	if len(views) == 0 {
		c.io.Println("No open pendencias.")
		return nil
	}

	tw := c.table()
	fmt.Fprintln(tw, "DATE\tNOME\tTIPO\tVALOR\tOBS\tSTATE")
	for _, p := range views {
		state := "synced"
		if p.Pending {
			state = "pending"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			formatTime(&p.Data),
			p.Nome,
			dash(p.Tipo),
			p.Valor.StringFixed(2),
			dash(p.Obs),
			state,
		)
	}
	return tw.Flush()
}
