// directorio consulta el directorio de negocios desde la terminal usando la
// misma fuente, validación y filtros que el servidor.
//
// Uso:
//
//	directorio listar --buscar acme --sector Furniture --estado "Home Furniture" [--json]
//	directorio sectores
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
