// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package main

import (
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/hnjm/fsolutions-sub001/cmd"

	_ "github.com/hnjm/fsolutions-sub001/addons/analytic"
	_ "github.com/hnjm/fsolutions-sub001/addons/assetbatch"
	_ "github.com/hnjm/fsolutions-sub001/addons/bankfees"
	_ "github.com/hnjm/fsolutions-sub001/addons/branch"
	_ "github.com/hnjm/fsolutions-sub001/addons/cleardata"
	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
	_ "github.com/hnjm/fsolutions-sub001/addons/invoicechecker"
	_ "github.com/hnjm/fsolutions-sub001/addons/orderflow"
	_ "github.com/hnjm/fsolutions-sub001/addons/posbankfees"
	_ "github.com/hnjm/fsolutions-sub001/addons/posextras"
	_ "github.com/hnjm/fsolutions-sub001/addons/posinvoice"
	_ "github.com/hnjm/fsolutions-sub001/addons/possession"
	_ "github.com/hnjm/fsolutions-sub001/addons/purchasereport"
	_ "github.com/hnjm/fsolutions-sub001/addons/reportpreview"
	_ "github.com/hnjm/fsolutions-sub001/addons/saleextras"
	_ "github.com/hnjm/fsolutions-sub001/addons/stockapproval"
	_ "github.com/hnjm/fsolutions-sub001/addons/uniqueref"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
