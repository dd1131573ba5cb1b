package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

func newRestaurantsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Browse restaurants",
	}
	cmd.AddCommand(newRestaurantsListCmd(s))
	cmd.AddCommand(newRestaurantsGetCmd(s))
	return cmd
}

func newRestaurantsListCmd(s *session) *cobra.Command {
	var deal, query string

	c := &cobra.Command{
		Use:   "list",
		Short: "List restaurants, optionally filtered by deal or search text",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := restaurant.ParseDeal(deal)
			if err != nil {
				return describe(err)
			}
			items, err := s.client.ListRestaurants(s.requestContext(cmd), restaurant.Filter{Deal: d, Query: query})
			if err != nil {
				return describe(err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCUISINE\tLOCATION\tDEALS")
			for _, r := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Cuisine, r.Location, deals(r))
			}
			return w.Flush()
		},
	}

	c.Flags().StringVar(&deal, "deal", "all", "all, earlyBird or lastMinute")
	c.Flags().StringVarP(&query, "query", "q", "", "search name, cuisine or location")
	return c
}

func deals(r *restaurant.Restaurant) string {
	switch {
	case r.HasEarlyBird && r.HasLastMinute:
		return "early bird, last minute"
	case r.HasEarlyBird:
		return "early bird"
	case r.HasLastMinute:
		return "last minute"
	default:
		return "-"
	}
}

func newRestaurantsGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a restaurant with its offers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := s.client.GetRestaurant(s.requestContext(cmd), args[0])
			if err != nil {
				return describe(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %s)\n", d.Name, d.Cuisine, d.Location)
			fmt.Fprintln(out, d.Description)
			if d.Address != "" {
				fmt.Fprintf(out, "Address: %s\n", d.Address)
			}
			if d.Phone != "" {
				fmt.Fprintf(out, "Phone: %s\n", d.Phone)
			}
			if d.OpeningHours != "" {
				fmt.Fprintf(out, "Hours: %s\n", d.OpeningHours)
			}
			for _, o := range d.EarlyBirdOffers {
				fmt.Fprintf(out, "Offer %s: %s, %s (%s)\n", o.ID, o.Title, o.Description, o.AvailableTimes)
			}
			if d.LastMinuteAvailable {
				fmt.Fprintln(out, "Last-minute deals available")
			}
			return nil
		},
	}
}

func newAvailabilityCmd(s *session) *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "availability <restaurant-id>",
		Short: "Show the time slots a restaurant offers on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(availability.DateLayout)
			}
			a, err := s.client.GetAvailability(s.requestContext(cmd), args[0], date)
			if err != nil {
				return describe(err)
			}

			out := cmd.OutOrStdout()
			if len(a.Slots) == 0 {
				fmt.Fprintf(out, "No availability on %s\n", a.Date)
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tTYPE\tDEAL")
			for _, slot := range a.Slots {
				fmt.Fprintf(w, "%s\t%s\t%s\n", slot.Time, slot.Category, slotDeal(slot))
			}
			return w.Flush()
		},
	}

	c.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	return c
}

func slotDeal(s availability.Slot) string {
	switch {
	case s.Discount != "":
		return s.Discount + " off"
	case s.OfferID != "":
		return "offer " + s.OfferID
	default:
		return "-"
	}
}

func newBookCmd(s *session) *cobra.Command {
	var req booking.Request

	c := &cobra.Command{
		Use:   "book",
		Short: "Book a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := s.client.CreateBooking(s.requestContext(cmd), req)
			if err != nil {
				return describe(err)
			}
			printBooking(cmd, b)
			return nil
		},
	}

	f := c.Flags()
	f.StringVar(&req.RestaurantID, "restaurant", "", "restaurant id")
	f.StringVar(&req.Date, "date", "", "date as YYYY-MM-DD")
	f.StringVar(&req.Time, "time", "", "time as HH:MM, one of the offered slots")
	f.IntVar(&req.PartySize, "party", 2, "party size (1-12)")
	f.StringVar(&req.CustomerName, "name", "", "guest name")
	f.StringVar(&req.CustomerEmail, "email", "", "guest email")
	f.StringVar(&req.CustomerPhone, "phone", "", "guest phone")
	return c
}

func newBookingCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Look up bookings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a booking by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := s.client.GetBooking(s.requestContext(cmd), args[0])
			if err != nil {
				return describe(err)
			}
			printBooking(cmd, b)
			return nil
		},
	})
	return cmd
}

func printBooking(cmd *cobra.Command, b *booking.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Booking %s is %s\n", b.ID, b.Status)
	fmt.Fprintf(out, "Confirmation code: %s\n", b.ConfirmationCode)
	fmt.Fprintf(out, "%s, %s at %s, %s for %s\n", b.RestaurantName, b.Date, b.Time, b.GuestLabel(), b.CustomerName)
}
