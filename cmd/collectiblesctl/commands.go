// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/collectibles/auth"
	"github.com/danielhkuo/collectibles/cliparse"
	"github.com/danielhkuo/collectibles/db"
	"github.com/danielhkuo/collectibles/sheets"
	"github.com/danielhkuo/collectibles/store"
)

type rootOptions struct {
	databaseURL  string
	databaseType string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "collectiblesctl",
		Short:        "Operator tasks for the collectibles database",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.databaseURL, "database-url", "d", "", "Database URL (default: DATABASE_URL)")
	cmd.PersistentFlags().StringVarP(&opts.databaseType, "database-type", "t", "", "sqlite or postgres (default: DATABASE_TYPE)")

	cmd.AddCommand(
		newNextIDCmd(opts),
		newSchemaCmd(opts),
		newNewsCmd(opts),
		newAdminKeyCmd(),
	)

	return cmd
}

// openStore resolves the database settings the same way the server does and
// makes sure the schema exists.
func openStore(cmd *cobra.Command, opts *rootOptions) (*store.Store, func(), error) {
	url, dbType, err := cliparse.ResolveDatabase(opts.databaseURL, opts.databaseType)
	if err != nil {
		return nil, nil, err
	}

	conn, err := db.Open(cmd.Context(), dbType, url)
	if err != nil {
		return nil, nil, err
	}

	if err := db.CreateSchema(conn, dbType); err != nil {
		conn.Close()
		return nil, nil, err
	}

	return store.New(conn, dbType), func() { conn.Close() }, nil
}

func newNextIDCmd(opts *rootOptions) *cobra.Command {
	names := make([]string, 0, len(sheets.All()))
	for _, s := range sheets.All() {
		names = append(names, s.Name)
	}

	return &cobra.Command{
		Use:       "next-id <sheet>",
		Short:     "Print the id the next record in a sheet would get",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := sheets.Lookup(args[0]); !ok {
				return fmt.Errorf("unknown sheet %q (want one of %s)", args[0], strings.Join(names, ", "))
			}

			st, closeFn, err := openStore(cmd, opts)
			if err != nil {
				return err
			}
			defer closeFn()

			id, err := st.NextID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], color.GreenString(id))
			return nil
		},
	}
}

func newSchemaCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List tables and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeFn, err := openStore(cmd, opts)
			if err != nil {
				return err
			}
			defer closeFn()

			cols, err := st.Schema(cmd.Context())
			if err != nil {
				return err
			}

			return printSchema(cmd.OutOrStdout(), cols)
		},
	}
}

func printSchema(out io.Writer, cols []store.ColumnInfo) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, color.New(color.Bold).Sprint("TABLE\tCOLUMN\tTYPE"))

	tables := 0
	last := ""
	for _, c := range cols {
		if c.Table != last {
			tables++
			last = c.Table
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Table, c.Column, c.DataType)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s tables, %s columns\n", humanize.Comma(int64(tables)), humanize.Comma(int64(len(cols))))
	return nil
}

type newsAddOptions struct {
	source    string
	category  string
	title     string
	url       string
	summary   string
	published string
}

func newNewsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manage news items",
	}

	add := &newsAddOptions{}
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a news item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item := store.NewsItem{
				Source:   add.source,
				Category: add.category,
				Title:    add.title,
				URL:      add.url,
				Summary:  add.summary,
			}
			if add.published != "" {
				at, err := time.Parse(time.RFC3339, add.published)
				if err != nil {
					return fmt.Errorf("--published must be RFC3339: %w", err)
				}
				item.PublishedAt = at
			}

			st, closeFn, err := openStore(cmd, opts)
			if err != nil {
				return err
			}
			defer closeFn()

			saved, err := st.AddNews(cmd.Context(), item)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s/%s, published %s)\n",
				color.GreenString(saved.ID), saved.Source, saved.Category, humanize.Time(saved.PublishedAt))
			return nil
		},
	}

	addCmd.Flags().StringVar(&add.source, "source", "", "News source")
	addCmd.Flags().StringVar(&add.category, "category", "", "News category")
	addCmd.Flags().StringVar(&add.title, "title", "", "Headline")
	addCmd.Flags().StringVar(&add.url, "url", "", "Article link")
	addCmd.Flags().StringVar(&add.summary, "summary", "", "Short summary")
	addCmd.Flags().StringVar(&add.published, "published", "", "Publish time, RFC3339 (default: now)")
	_ = addCmd.MarkFlagRequired("source")
	_ = addCmd.MarkFlagRequired("title")

	cmd.AddCommand(addCmd)
	return cmd
}

func newAdminKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin-key",
		Short: "Generate a random ADMIN_KEY value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := auth.GenerateAdminKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}
