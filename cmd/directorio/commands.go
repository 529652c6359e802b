package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	domdir "github.com/jhoicas/directorio-negocios/internal/domain/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
	"github.com/jhoicas/directorio-negocios/internal/infrastructure/feed"
	"github.com/jhoicas/directorio-negocios/pkg/config"
	"github.com/jhoicas/directorio-negocios/pkg/logger"
)

type rootFlags struct {
	verbose bool
}

type listFlags struct {
	search string
	sector string
	status string
	asJSON bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:           "directorio",
		Short:         "Consulta el directorio de negocios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&rf.verbose, "verbose", "v", false, "logs de depuración en stderr")
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newListCmd(&rf), newSectorsCmd(&rf))
	return root
}

func newListCmd(rf *rootFlags) *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista los negocios que cumplen los criterios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := loadListings(cmd.Context(), cmd.ErrOrStderr(), rf.verbose)
			if err != nil {
				return err
			}
			in := dto.CriteriaDTO{Search: lf.search, Sector: lf.sector, Status: lf.status}
			if lf.asJSON {
				res, err := uc.Filter(in)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return writeTable(cmd.OutOrStdout(), uc.Build(directory.Criteria(in)))
		},
	}
	cmd.Flags().StringVar(&lf.search, "buscar", "", "texto contenido en el nombre")
	cmd.Flags().StringVar(&lf.sector, "sector", "", "sector exacto")
	cmd.Flags().StringVar(&lf.status, "estado", "", "etiqueta de categoría de estado")
	cmd.Flags().BoolVar(&lf.asJSON, "json", false, "salida JSON")
	return cmd
}

func newSectorsCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sectores",
		Short: "Lista los sectores disponibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := loadListings(cmd.Context(), cmd.ErrOrStderr(), rf.verbose)
			if err != nil {
				return err
			}
			for _, s := range uc.Sectors() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

// loadListings carga el directorio de forma síncrona con la configuración del entorno.
func loadListings(ctx context.Context, logOut io.Writer, verbose bool) (*directory.ListingsUseCase, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level, Out: logOut})

	source, closeSource, err := feed.FromConfig(ctx, cfg.Feed, cfg.DB)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	loader := directory.NewLoadUseCase(source, directory.LoaderConfig{
		ImageBase: cfg.Assets.ImageBase,
		Timeout:   cfg.Feed.Timeout,
	}, log)
	ds, err := loader.Load(ctx)
	state := directory.NewDirectoryState()
	state.Publish(ds, err)
	if err != nil {
		return nil, err
	}

	matcher := domdir.NewMatcher(domdir.NewStatusCategories(
		domdir.StatusCategory{Label: cfg.Status.CompanyLabel, Status: entity.StatusCompany},
		domdir.StatusCategory{Label: cfg.Status.IndividualLabel, Status: entity.StatusIndividual},
	))
	return directory.NewListingsUseCase(state, matcher), nil
}

// writeTable imprime una fila por tarjeta; loading/empty imprimen el mensaje.
func writeTable(w io.Writer, view *dto.ListingsView) error {
	if view.Placeholder() {
		_, err := fmt.Fprintln(w, view.Message)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NOMBRE\tSECTOR\tTIPO\tEMAIL\tTELÉFONO")
	for _, c := range view.Cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Sector, c.Badge.Label, dash(c.Email), dash(c.Mobile))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d de %d negocios\n", view.Count, view.Total)
	return err
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
