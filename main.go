/* Campus Emissions Tracker (CET) is a component of the DataCan GreenDesk (GD) Platform.
License:

	[PROPER LEGALESE HERE...]

	INTERIM LICENSE DESCRIPTION:
	In spirit, this license:
	1. Allows <Third Party> to use, modify, and / or distributre this software in perpetuity so long as <Third Party> understands:
		a. The software is porvided as is without guarantee of additional support from DataCan in any form.
		b. The software is porvided as is without guarantee of exclusivity.

	2. Prohibits <Third Party> from taking any action which might interfere with DataCan's right to use, modify and / or distributre this software in perpetuity.
*/

package main

import (
	"flag"
	"log"

	"github.com/leehayford/cet/pkg"
)

func main() {

	cleanDB := flag.Bool("clean", false, "Drop and recreate CET tables")
	seed := flag.Bool("seed", false, "Re-seed the emission factor table and exit")
	flag.Parse()

	if err := pkg.LoadConfig(); err != nil {
		log.Fatal(err)
	}

	/* CET DB - CONNECT */
	if err := pkg.CET.Connect(); err != nil {
		log.Fatal(err)
	}
	defer pkg.CET.Close()

	if *cleanDB {
		/* CLEAN DATABASE - DROP ALL CET TABLES */
		if err := pkg.CET.DropCETTables(); err != nil {
			log.Fatal(err)
		}
	}

	/* CREATE OR MIGRATE CET TABLES; SEEDS ADMIN + FACTORS ON FIRST RUN */
	if err := pkg.CET.CreateCETTables(); err != nil {
		log.Fatal(err)
	}

	if *seed {
		if err := pkg.SeedEmissionFactors(pkg.CET.DB); err != nil {
			log.Fatal(err)
		}
		pkg.LogChk("Emission factor table seeded.")
		return
	}

	/* MAIN SERVER */
	app := pkg.NewApp()
	log.Fatal(app.Listen(pkg.HTTP_LISTEN_ADDR))
}
