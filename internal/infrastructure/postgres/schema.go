package postgres

// SchemaSQL crea la tabla que lee BusinessSource. Las columnas opcionales
// admiten NULL; status no se restringe aquí porque el loader descarta
// los valores desconocidos con un warning.
const SchemaSQL = `CREATE TABLE IF NOT EXISTS businesses (
	id       BIGSERIAL PRIMARY KEY,
	position INTEGER   NOT NULL DEFAULT 0,
	name     TEXT      NOT NULL,
	sector   TEXT      NOT NULL,
	status   TEXT      NOT NULL,
	"desc"   TEXT,
	image    TEXT,
	social   TEXT,
	email    TEXT,
	mobile   TEXT
);`
