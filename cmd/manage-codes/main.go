// manage-codes cria, atualiza e lista códigos de acesso direto no banco configurado
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/acis05/Pbiacis/infrastructure/database"
	"github.com/acis05/Pbiacis/infrastructure/migration"
	"github.com/acis05/Pbiacis/infrastructure/repository"
	"github.com/acis05/Pbiacis/internal/config"
	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/pkg/utils"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	red    = color.New(color.FgRed)
)

type options struct {
	code      string
	customer  string
	tenant    string
	validFrom string
	validTo   string
	validDays int
	inactive  bool
	list      bool
	asJSON    bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("manage-codes", flag.ContinueOnError)
	fs.StringVar(&opts.code, "code", "", "código de acesso (vazio gera um novo)")
	fs.StringVar(&opts.customer, "customer", "", "nome do cliente")
	fs.StringVar(&opts.tenant, "tenant", "", "tenant das vendas (padrão DEFAULT_TENANT)")
	fs.StringVar(&opts.validFrom, "valid-from", "", "início da validade YYYY-MM-DD")
	fs.StringVar(&opts.validTo, "valid-to", "", "fim da validade YYYY-MM-DD")
	fs.IntVar(&opts.validDays, "valid-days", 0, "validade em dias a partir de hoje")
	fs.BoolVar(&opts.inactive, "inactive", false, "grava o código desativado")
	fs.BoolVar(&opts.list, "list", false, "lista os códigos cadastrados")
	fs.BoolVar(&opts.asJSON, "json", false, "imprime o resultado em JSON")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if !opts.list && strings.TrimSpace(opts.customer) == "" {
		return opts, fmt.Errorf("-customer é obrigatório ao gravar um código")
	}

	return opts, nil
}

func (o options) saveInput() authenticating.SaveCodeInput {
	active := !o.inactive
	input := authenticating.SaveCodeInput{
		Code:         o.code,
		Tenant:       o.tenant,
		CustomerName: o.customer,
		Active:       &active,
		ValidDays:    o.validDays,
	}
	if o.validFrom != "" {
		input.ValidFrom = &o.validFrom
	}
	if o.validTo != "" {
		input.ValidTo = &o.validTo
	}
	return input
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		red.Printf("Erro: %s\n", err)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(logrus.WarnLevel)

	ctx := context.Background()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		red.Printf("Erro ao conectar ao banco de dados: %s\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := migration.Run(ctx, conn); err != nil {
		red.Printf("Erro ao aplicar migrações: %s\n", err)
		os.Exit(1)
	}

	service := authenticating.NewService(repository.NewAccessCodeRepository(conn), cfg)

	if opts.list {
		codes, err := service.ListCodes(ctx)
		if err != nil {
			red.Printf("Erro: %s\n", err)
			os.Exit(1)
		}

		if opts.asJSON {
			fmt.Println(utils.PrettyJson(codes))
			return
		}

		if len(codes) == 0 {
			yellow.Println("Nenhum código cadastrado")
			return
		}
		for _, code := range codes {
			printCode(code)
		}
		return
	}

	saved, err := service.SaveCode(ctx, opts.saveInput())
	if err != nil {
		red.Printf("Erro: %s\n", err)
		os.Exit(1)
	}

	if opts.asJSON {
		fmt.Println(utils.PrettyJson(saved))
		return
	}

	green.Println("Código de acesso gravado:")
	printCode(*saved)
}

func printCode(code domain.AccessCode) {
	status := green.Sprint("ativo")
	if !code.Active {
		status = red.Sprint("inativo")
	}

	fmt.Printf("  %-14s %-10s %-30s %s  %s\n",
		code.Code, code.Tenant, code.CustomerName, status, validity(code))
}

func validity(code domain.AccessCode) string {
	from, to := "-", "-"
	if code.ValidFrom != nil {
		from = *code.ValidFrom
	}
	if code.ValidTo != nil {
		to = *code.ValidTo
	}
	if from == "-" && to == "-" {
		return "sem validade"
	}
	return from + " → " + to
}
