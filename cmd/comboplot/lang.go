package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/i18n"
)

func (a *app) newLangCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [en-US|zh-CN]",
		Short: "Show or save the display language",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runLang,
	}
}

func (a *app) runLang(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.stdout, a.loc.T("lang.current", map[string]interface{}{
			"Language": a.loc.Language().String(),
		}))
		return nil
	}

	tag, err := i18n.Parse(args[0])
	if err != nil {
		return err
	}
	if tag == a.loc.Language() {
		// Already active, possibly from the environment; save it anyway.
		err = a.store.LanguageChanged(tag)
	} else {
		err = a.loc.SetLanguage(tag)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, a.loc.T("lang.changed", map[string]interface{}{
		"Language": tag.String(),
	}))
	return nil
}
