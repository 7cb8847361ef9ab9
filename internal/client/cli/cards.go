package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/loanvault/internal/common"
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
	"google.golang.org/protobuf/proto"
)

func printCards(w io.Writer, cards []*pb.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No cards yet, use 'addcard'.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNUMBER\tEXPIRES\tNAME\tDEFAULT")
	for _, c := range cards {
		def := ""
		if c.GetIsDefault() {
			def = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%02d/%d\t%s\t%s\n", c.GetId(), c.GetCardType(), c.GetMaskedNumber(),
			c.GetExpiryMonth(), c.GetExpiryYear(), c.GetNameOnCard(), def)
	}
	_ = tw.Flush()
}

func (a *App) Cards(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cards, err := a.api.ListCards(ctx)
	if err != nil {
		return err
	}
	printCards(a.out, cards)
	return nil
}

func (a *App) AddCard(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	in := &pb.AddCardRequest{}
	var err error

	if in.CardType, err = GetSimpleText(a.reader, "Card type (visa, mastercard, verve, amex)", a.out); err != nil {
		return err
	}
	if in.CardNumber, err = GetSimpleText(a.reader, "Card number", a.out); err != nil {
		return err
	}
	cvc, err := getPassword(a.out, "CVC")
	if err != nil {
		return err
	}
	in.Cvc = string(cvc)
	common.WipeByteArray(cvc)
	month, err := GetInt(a.reader, "Expiry month (1-12)", a.out)
	if err != nil {
		return err
	}
	year, err := GetInt(a.reader, "Expiry year (YYYY)", a.out)
	if err != nil {
		return err
	}
	in.ExpiryMonth, in.ExpiryYear = int32(month), int32(year)
	if in.NameOnCard, err = GetSimpleText(a.reader, "Name on card", a.out); err != nil {
		return err
	}
	if in.IsDefault, err = GetYesNo(a.reader, "Make this the default card?", a.out); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	card, err := a.api.AddCard(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s %s (id %s)\n", card.GetCardType(), card.GetMaskedNumber(), card.GetId())
	return nil
}

// EditCard changes expiry, name or default flag; empty answers keep the
// stored value.
func (a *App) EditCard(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Card ID", a.out)
	if err != nil {
		return err
	}

	in := &pb.UpdateCardRequest{CardId: id}
	month, err := GetOptionalInt(a.reader, "New expiry month (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if month != nil {
		in.ExpiryMonth = proto.Int32(int32(*month))
	}
	year, err := GetOptionalInt(a.reader, "New expiry year (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if year != nil {
		in.ExpiryYear = proto.Int32(int32(*year))
	}
	name, err := GetSimpleText(a.reader, "New name on card (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		in.NameOnCard = &name
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	card, err := a.api.UpdateCard(ctx, in)
	if err != nil {
		return err
	}
	printCards(a.out, []*pb.Card{card})
	return nil
}

func (a *App) SetDefault(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Card ID", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.SetDefaultCard(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Default card updated.")
	return nil
}

func (a *App) DeleteCard(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Card ID", a.out)
	if err != nil {
		return err
	}
	sure, err := GetYesNo(a.reader, "Delete card "+id+"?", a.out)
	if err != nil || !sure {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.DeleteCard(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Card deleted.")
	return nil
}
