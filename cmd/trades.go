package cmd

import (
	"pot-portal/feature/trade"
	"pot-portal/feature/trade/models"

	"github.com/spf13/cobra"
)

var (
	filterName          string
	filterTypeName      string
	filterRarity        string
	filterType          int
	filterCorrupted     bool
	filterMirrored      bool
	filterMinStack      int
	filterMaxStack      int
	filterAffixName     string
	filterAffixMinTier  int
	filterAffixMinValue float64
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Browse trade listings",
}

var tradesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every active trade listing",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		listings, err := trade.NewService(a.client, a.logger).GetTradeListings(cmd.Context())
		if err != nil {
			return err
		}
		return a.printer.Print(listings)
	}),
}

var tradesFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Search trade listings",
	Long: `Search trade listings. Only the flags you pass are sent to the backend.

Examples:
  trades filter --name "Iron Sword" --rarity Rare
  trades filter --affix-name Sharp --affix-min-tier 2 --corrupted=false`,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		filter, err := gearFilterFromFlags(cmd)
		if err != nil {
			return err
		}
		listings, err := trade.NewService(a.client, a.logger).GetFilteredTrades(cmd.Context(), filter)
		if err != nil {
			return err
		}
		return a.printer.Print(listings)
	}),
}

var tradesRequestSoldCmd = &cobra.Command{
	Use:   "request-sold <listing-id> <buyer-steam-id>",
	Short: "Mark a listing as sold to a buyer",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		if err := trade.NewService(a.client, a.logger).RequestTradeListingSold(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		a.success("Sale requested")
		return nil
	}),
}

// gearFilterFromFlags maps changed flags onto the filter; untouched flags stay unset.
func gearFilterFromFlags(cmd *cobra.Command) (models.GearFilter, error) {
	flags := cmd.Flags()
	f := models.GearFilter{
		Name:      filterName,
		TypeName:  filterTypeName,
		AffixName: filterAffixName,
	}

	if flags.Changed("rarity") {
		r, err := models.ParseRarity(filterRarity)
		if err != nil {
			return f, err
		}
		f.Rarity = &r
	}
	if flags.Changed("type") {
		f.Type = &filterType
	}
	if flags.Changed("corrupted") {
		f.IsCorrupted = &filterCorrupted
	}
	if flags.Changed("mirrored") {
		f.IsMirrored = &filterMirrored
	}
	if flags.Changed("min-stack") {
		f.MinStack = &filterMinStack
	}
	if flags.Changed("max-stack") {
		f.MaxStack = &filterMaxStack
	}
	if flags.Changed("affix-min-tier") {
		f.AffixMinTier = &filterAffixMinTier
	}
	if flags.Changed("affix-min-value") {
		f.AffixMinValue = &filterAffixMinValue
	}
	return f, nil
}

func init() {
	fl := tradesFilterCmd.Flags()
	fl.StringVar(&filterName, "name", "", "Item name")
	fl.StringVar(&filterTypeName, "type-name", "", "Item type name")
	fl.StringVar(&filterRarity, "rarity", "", "Rarity: Normal, Magic, Rare, Unique or 0-3")
	fl.IntVar(&filterType, "type", 0, "Item type id")
	fl.BoolVar(&filterCorrupted, "corrupted", false, "Only corrupted (or, with =false, uncorrupted) items")
	fl.BoolVar(&filterMirrored, "mirrored", false, "Only mirrored (or, with =false, unmirrored) items")
	fl.IntVar(&filterMinStack, "min-stack", 0, "Minimum stack size")
	fl.IntVar(&filterMaxStack, "max-stack", 0, "Maximum stack size")
	fl.StringVar(&filterAffixName, "affix-name", "", "Affix name")
	fl.IntVar(&filterAffixMinTier, "affix-min-tier", 0, "Minimum affix tier")
	fl.Float64Var(&filterAffixMinValue, "affix-min-value", 0, "Minimum affix value")

	tradesCmd.AddCommand(tradesListCmd, tradesFilterCmd, tradesRequestSoldCmd)
	RootCmd.AddCommand(tradesCmd)
}
